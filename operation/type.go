package operation

// Type is the kind of a storage operation.
type Type int

const (
	// TypeGet reads a key, or every key under a prefix.
	TypeGet Type = iota
	// TypePut writes a key.
	TypePut
	// TypeDelete removes a key, or every key under a prefix.
	TypeDelete
)

// Mutates reports whether the operation changes stored data.
func (t Type) Mutates() bool {
	return t == TypePut || t == TypeDelete
}

func (t Type) String() string {
	switch t {
	case TypeGet:
		return "Get"
	case TypePut:
		return "Put"
	case TypeDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}
