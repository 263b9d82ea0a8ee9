package cloner

import (
	"reflect"
	"unsafe"

	"deep-cloner/value"
)

// Context is the mutable state of one top-level Clone call. It is threaded
// by pointer through every recursive call of that invocation and never
// shared between invocations.
type Context struct {
	visited map[any]any
	depth   int
}

// NewContext allocates an empty context.
func NewContext() *Context {
	return &Context{visited: make(map[any]any)}
}

// Depth returns how many CloneInContext calls are currently on the stack.
func (c *Context) Depth() int { return c.depth }

// Remember records dst as the clone of src so later encounters of the same
// src (cycles, shared sub-structure) resolve to dst. Values without identity
// are ignored.
func (c *Context) Remember(src, dst any) {
	key, ok := identityOf(src)
	if !ok {
		return
	}

	if c.visited == nil {
		c.visited = make(map[any]any)
	}

	c.visited[key] = dst
}

// Recall returns the clone previously remembered for src.
func (c *Context) Recall(src any) (any, bool) {
	key, ok := identityOf(src)
	if !ok {
		return nil, false
	}

	dst, found := c.visited[key]
	return dst, found
}

type sequenceIdentity struct {
	first  *any
	length int
}

// referenceIdentity identifies Go maps, pointers and typed slices reached
// through the fallback rules. The type tells apart a struct pointer from a
// pointer to its first field.
type referenceIdentity struct {
	typ    reflect.Type
	ptr    unsafe.Pointer
	length int
}

// identityOf returns a comparable key standing for the identity of src.
// Records are keyed by pointer; non-empty sequences by backing array and
// length; other maps, pointers and slices by type and address. Values without
// reference semantics have no identity.
func identityOf(src any) (any, bool) {
	switch v := src.(type) {
	case nil:
		return nil, false
	case *value.Record:
		return v, v != nil
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return sequenceIdentity{first: &v[0], length: len(v)}, true
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		return referenceIdentity{typ: rv.Type(), ptr: rv.UnsafePointer()}, true

	case reflect.Slice:
		if rv.Len() == 0 {
			return nil, false
		}
		return referenceIdentity{typ: rv.Type(), ptr: rv.UnsafePointer(), length: rv.Len()}, true

	default:
		return nil, false
	}
}
