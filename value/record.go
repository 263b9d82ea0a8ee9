package value

import "slices"

// Record is a plain composite with ordered own properties and an optional
// parent. A nil parent means the universal root, which has no properties
// and is never materialized.
type Record struct {
	parent  *Record
	names   []string
	symbols []Symbol
	values  map[Key]any
}

// NewRecord returns an empty record inheriting from parent (nil for root).
func NewRecord(parent *Record) *Record {
	return &Record{
		parent: parent,
		values: make(map[Key]any),
	}
}

// Parent returns the next record in the inheritance chain, or nil at root.
func (r *Record) Parent() *Record { return r.parent }

// SetParent replaces the parent link and returns r.
func (r *Record) SetParent(parent *Record) *Record {
	r.parent = parent
	return r
}

// Set assigns an own property. New keys are appended to the enumeration
// order of their group; existing keys keep their position.
func (r *Record) Set(k Key, v any) *Record {
	if r.values == nil {
		r.values = make(map[Key]any)
	}

	if _, exists := r.values[k]; !exists {
		if s, ok := k.Symbol(); ok {
			r.symbols = append(r.symbols, s)
		} else {
			r.names = append(r.names, k.name)
		}
	}

	r.values[k] = v
	return r
}

// Put is Set with a conventional key.
func (r *Record) Put(name string, v any) *Record {
	return r.Set(StringKey(name), v)
}

// Get returns an own property.
func (r *Record) Get(k Key) (any, bool) {
	v, ok := r.values[k]
	return v, ok
}

// Field returns the own property stored under a conventional name, or nil.
func (r *Record) Field(name string) any {
	return r.values[StringKey(name)]
}

// Has reports whether k is an own property.
func (r *Record) Has(k Key) bool {
	_, ok := r.values[k]
	return ok
}

// Lookup resolves k through own properties first, then the parent chain.
// A cyclic chain is walked once.
func (r *Record) Lookup(k Key) (any, bool) {
	var found any
	ok := false

	r.walkChain(func(cur *Record) bool {
		found, ok = cur.values[k]
		return !ok
	})

	return found, ok
}

// Delete removes an own property.
func (r *Record) Delete(k Key) {
	if _, ok := r.values[k]; !ok {
		return
	}

	delete(r.values, k)
	if s, ok := k.Symbol(); ok {
		r.symbols = slices.DeleteFunc(r.symbols, func(x Symbol) bool { return x == s })
	} else {
		r.names = slices.DeleteFunc(r.names, func(x string) bool { return x == k.name })
	}
}

// Keys returns own keys: conventional names in insertion order, then symbols
// in insertion order.
func (r *Record) Keys() []Key {
	keys := make([]Key, 0, len(r.names)+len(r.symbols))
	for _, n := range r.names {
		keys = append(keys, StringKey(n))
	}

	for _, s := range r.symbols {
		keys = append(keys, SymbolKey(s))
	}

	return keys
}

// Len returns the number of own properties.
func (r *Record) Len() int { return len(r.values) }

// Depth returns the length of the parent chain, not counting the root.
// In a cyclic chain, records seen before are not counted again.
func (r *Record) Depth() int {
	n := 0
	r.walkChain(func(cur *Record) bool {
		if cur != r {
			n++
		}
		return true
	})

	return n
}

// walkChain visits r and its ancestors until visit returns false, the root
// is reached or a record repeats.
func (r *Record) walkChain(visit func(*Record) bool) {
	seen := make(map[*Record]struct{})
	for cur := r; cur != nil; cur = cur.parent {
		if _, dup := seen[cur]; dup {
			return
		}
		seen[cur] = struct{}{}

		if !visit(cur) {
			return
		}
	}
}
