package value

import (
	"bytes"
	"strings"
)

// Key identifies a record property or a rule. It is either a conventional
// string name or a Symbol. The zero Key is "absent".
type Key struct {
	name     string
	sym      Symbol
	symbolic bool
}

// StringKey returns a conventional key.
func StringKey(name string) Key {
	return Key{name: name}
}

// SymbolKey returns an opaque key backed by s.
func SymbolKey(s Symbol) Key {
	return Key{sym: s, symbolic: true}
}

// IsSymbol reports whether the key is backed by a Symbol.
func (k Key) IsSymbol() bool { return k.symbolic }

// Name returns the conventional name, or "" for symbol keys.
func (k Key) Name() string { return k.name }

// Symbol returns the backing symbol and true for symbol keys.
func (k Key) Symbol() (Symbol, bool) { return k.sym, k.symbolic }

// IsZero reports whether the key is absent: the zero Key or an empty name.
func (k Key) IsZero() bool {
	if k.symbolic {
		return k.sym.IsZero()
	}

	return k.name == ""
}

func (k Key) String() string {
	if k.symbolic {
		return k.sym.String()
	}

	return k.name
}

// Compare orders keys deterministically: conventional names first, sorted,
// then symbols by description and identity. It returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	if k.symbolic != o.symbolic {
		if k.symbolic {
			return 1
		}
		return -1
	}

	if !k.symbolic {
		return strings.Compare(k.name, o.name)
	}

	if c := strings.Compare(k.sym.desc, o.sym.desc); c != 0 {
		return c
	}

	return bytes.Compare(k.sym.id[:], o.sym.id[:])
}
