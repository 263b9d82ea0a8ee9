package cloner

import (
	"log/slog"

	"deep-cloner/diagnostic"
	"deep-cloner/options"
	"deep-cloner/value"
)

// attachParent links dst to the inheritance chain according to the
// configured policy. parent is the source record's parent; nil is the root.
func attachParent(dst, parent *value.Record, cln *Engine, ctx *Context) diagnostic.Diagnostics {
	policy := cln.config.Policy

	switch policy {
	case options.PolicyClone:
		cloned, problems := cloneChain(parent, cln, ctx)
		dst.SetParent(cloned)
		return problems

	case options.PolicyReference:
		dst.SetParent(parent)
		return nil

	case options.PolicyExclude:
		return nil

	default:
		cln.logger.Debug("deepclone: unknown inheritance chain policy",
			slog.String("policy", string(policy)),
			slog.String("fallback", string(options.PolicyFallback)),
		)

		dst.SetParent(parent)
		return diagnostic.Diagnostics{
			diagnostic.New(
				"Unknown inheritance chain policy configured - {{.policy}}, falling back to {{.fallbackPolicy}}",
				diagnostic.Info{
					"policy":         string(policy),
					"fallbackPolicy": string(options.PolicyFallback),
				},
			).WithCode(diagnostic.CodeBadPolicyValue),
		}
	}
}

// cloneChain clones parent's own properties and, recursively, its own
// parent. The root (nil) terminates the chain and is never cloned.
func cloneChain(parent *value.Record, cln *Engine, ctx *Context) (*value.Record, diagnostic.Diagnostics) {
	if parent == nil {
		return nil, nil
	}

	if prev, ok := ctx.Recall(parent); ok {
		if r, isRecord := prev.(*value.Record); isRecord {
			return r, nil
		}
	}

	dst := value.NewRecord(nil)
	ctx.Remember(parent, dst)

	problems := cloneOwnProperties(parent, dst, cln, ctx)
	grand, more := cloneChain(parent.Parent(), cln, ctx)
	dst.SetParent(grand)
	problems.Merge(more)

	return dst, problems
}
