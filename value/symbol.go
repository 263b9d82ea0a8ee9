package value

import "github.com/google/uuid"

// Symbol is an opaque unique key. Two symbols created with the same
// description are still distinct; only copies of the same Symbol compare equal.
type Symbol struct {
	id   uuid.UUID
	desc string
}

// NewSymbol creates a fresh symbol with the given description.
func NewSymbol(description string) Symbol {
	return Symbol{id: uuid.New(), desc: description}
}

// Description returns the human-readable description the symbol was created with.
func (s Symbol) Description() string { return s.desc }

// IsZero reports whether s is the zero Symbol (never produced by NewSymbol).
func (s Symbol) IsZero() bool { return s.id == uuid.Nil }

func (s Symbol) String() string {
	return "Symbol(" + s.desc + ")"
}
