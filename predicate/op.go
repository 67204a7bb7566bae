package predicate

// Op is the comparison applied by a predicate.
type Op int

const (
	// OpEqual holds when the target equals the predicate value.
	OpEqual Op = iota
	// OpNotEqual holds when the target differs from the predicate value.
	OpNotEqual
	// OpGreater holds when the revision is above the predicate value.
	OpGreater
	// OpLess holds when the revision is below the predicate value.
	OpLess
)

// ValidFor reports whether op can compare target. Values only compare for
// equality; revisions are ordered.
func (op Op) ValidFor(target Target) bool {
	switch op {
	case OpEqual, OpNotEqual:
		return target == TargetValue || target == TargetVersion
	case OpGreater, OpLess:
		return target == TargetVersion
	default:
		return false
	}
}

// Symbol returns the comparison operator, or "" for an unknown op.
func (op Op) Symbol() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	default:
		return ""
	}
}

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "Equal"
	case OpNotEqual:
		return "NotEqual"
	case OpGreater:
		return "Greater"
	case OpLess:
		return "Less"
	default:
		return "Unknown"
	}
}
