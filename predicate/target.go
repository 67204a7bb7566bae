package predicate

// Target selects which aspect of a key a predicate compares.
type Target int

const (
	// TargetVersion compares the modification revision of the key; a missing
	// key has revision 0.
	TargetVersion Target = iota
	// TargetValue compares the raw stored bytes of the key.
	TargetValue
)

// Field returns the name of the compared field in a stored record, or "" for
// an unknown target.
func (t Target) Field() string {
	switch t {
	case TargetVersion:
		return "mod_revision"
	case TargetValue:
		return "value"
	default:
		return ""
	}
}

func (t Target) String() string {
	switch t {
	case TargetVersion:
		return "Version"
	case TargetValue:
		return "Value"
	default:
		return "Unknown"
	}
}
