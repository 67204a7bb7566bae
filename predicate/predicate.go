// Package predicate provides types for conditional operations.
// It defines predicate logic used in transactional conditional execution.
package predicate

// Predicate represents a condition used for conditional operations.
// Predicates are used in transactions to specify conditions for execution.
type Predicate interface {
	// Key returns the key that this predicate applies to.
	Key() []byte
	// Operation returns the comparison operation (Equal, NotEqual, Greater, Less).
	Operation() Op
	// Target returns what aspect of the key to compare (Version, Value).
	Target() Target
	// Value returns the comparison value: []byte for value targets, int64 for version targets.
	Value() any
}

type predicate struct {
	key    []byte
	op     Op
	target Target
	value  any
}

func (p predicate) Key() []byte    { return p.key }
func (p predicate) Operation() Op  { return p.op }
func (p predicate) Target() Target { return p.target }
func (p predicate) Value() any     { return p.value }

// ValueEqual holds when the key exists and its value equals value.
func ValueEqual(key []byte, value []byte) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetValue, value: value}
}

// ValueNotEqual holds when the key is absent or its value differs from value.
func ValueNotEqual(key []byte, value []byte) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetValue, value: value}
}

// VersionEqual compares the modification revision of the key.
// An absent key has revision 0, so VersionEqual(key, 0) means "key does not exist".
func VersionEqual(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetVersion, value: version}
}

// VersionNotEqual is the negation of VersionEqual.
func VersionNotEqual(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetVersion, value: version}
}

// VersionGreater holds when the key revision is greater than version.
func VersionGreater(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpGreater, target: TargetVersion, value: version}
}

// VersionLess holds when the key revision is less than version.
func VersionLess(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpLess, target: TargetVersion, value: version}
}
