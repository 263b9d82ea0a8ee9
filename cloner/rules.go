package cloner

import (
	"deep-cloner/diagnostic"
	"deep-cloner/node"
	"deep-cloner/primitive"
	"deep-cloner/value"
)

func isPrimitive(src any, _ *Context) bool {
	return primitive.IsPrimitive(src)
}

func clonePrimitive(in CloneInput) Result {
	return Cloned(in.Src)
}

func isPlainRecord(src any, _ *Context) bool {
	r, ok := src.(*value.Record)
	return ok && r != nil
}

// cloneRecord copies own properties into a fresh record and then applies the
// inheritance chain policy. As the fallback rule it also receives values that
// are not records; those are read through node.Fields and inherit from root.
func cloneRecord(in CloneInput) Result {
	src, isRecord := in.Src.(*value.Record)
	if isRecord && src == nil {
		return Cloned(src)
	}

	if prev, ok := in.Ctx.Recall(in.Src); ok {
		return Cloned(prev)
	}

	dst := value.NewRecord(nil)
	in.Ctx.Remember(in.Src, dst)

	problems := cloneOwnProperties(in.Src, dst, in.Cloner, in.Ctx)

	var parent *value.Record
	if isRecord {
		parent = src.Parent()
	}

	problems.Merge(attachParent(dst, parent, in.Cloner, in.Ctx))

	return Result{Cloned: dst, Problems: problems}
}

// cloneOwnProperties clones every own property of src into dst, collecting
// all child diagnostics in enumeration order. A child that could not be
// cloned is stored as nil.
func cloneOwnProperties(src any, dst *value.Record, cln *Engine, ctx *Context) diagnostic.Diagnostics {
	var problems diagnostic.Diagnostics
	for _, f := range node.Fields(src) {
		res := cln.CloneInContext(f.Value, ctx)
		problems.Merge(res.Problems)
		dst.Set(f.Key, res.Cloned)
	}

	return problems
}

func isPlainSequence(src any, _ *Context) bool {
	s, ok := src.([]any)
	return ok && s != nil
}

// cloneSequence produces a new sequence of the same length with every
// element cloned at its index. Values that are not plain sequences (the rule
// used as fallback) contribute their node.Fields values in order.
func cloneSequence(in CloneInput) Result {
	if prev, ok := in.Ctx.Recall(in.Src); ok {
		return Cloned(prev)
	}

	src, ok := in.Src.([]any)
	if !ok {
		for _, f := range node.Fields(in.Src) {
			src = append(src, f.Value)
		}

		if src == nil {
			src = []any{}
		}
	}

	dst := make([]any, len(src))
	in.Ctx.Remember(in.Src, dst)

	var problems diagnostic.Diagnostics
	for i, el := range src {
		res := in.Cloner.CloneInContext(el, in.Ctx)
		problems.Merge(res.Problems)
		dst[i] = res.Cloned
	}

	return Result{Cloned: dst, Problems: problems}
}
