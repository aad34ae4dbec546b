package operation

// Type is the kind of a mutation.
type Type int

const (
	// TypePut writes a value under a key.
	TypePut Type = iota + 1
	// TypeDelete removes a key or a range of keys.
	TypeDelete
)

// Valid reports whether t is a known mutation type.
func (t Type) Valid() bool {
	return t == TypePut || t == TypeDelete
}

func (t Type) String() string {
	switch t {
	case TypePut:
		return "Put"
	case TypeDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}
