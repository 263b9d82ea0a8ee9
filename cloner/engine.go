package cloner

import (
	"log/slog"
	"maps"
	"slices"

	"deep-cloner/diagnostic"
	"deep-cloner/internal/common"
	"deep-cloner/node"
)

// Engine clones values according to its Config.
//
// An Engine is not safe for concurrent use with SetConfig; concurrent Clone
// calls on an engine whose configuration is not being replaced are fine,
// since each call works on its own Context and derived engine.
type Engine struct {
	config Config
	logger *slog.Logger
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing of rule selection.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine from the default configuration merged with override.
func New(override *Override, opts ...Option) *Engine {
	e := &Engine{
		config: Merge(DefaultConfig(), override),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Config returns a copy of the stored configuration. Changing its Rules map
// does not affect the engine.
func (e *Engine) Config() Config {
	cfg := e.config
	cfg.Rules = maps.Clone(e.config.Rules)

	return cfg
}

// SetConfig replaces the stored configuration wholesale and returns e.
// Rules are re-keyed by their ID and nil rules are dropped.
func (e *Engine) SetConfig(cfg Config) *Engine {
	cfg.Rules = keyedRules(cfg.Rules)
	e.config = cfg

	return e
}

// Clone deep-copies src. A non-nil override applies to this call only: it is
// merged into a disposable engine and the stored configuration is untouched.
func (e *Engine) Clone(src any, override *Override) Result {
	effective := &Engine{
		config: Merge(e.config, override),
		logger: e.logger,
	}

	return effective.CloneInContext(src, NewContext())
}

// CloneInContext clones src as part of the invocation owning ctx. Rules use
// it to recurse into child values. A nil ctx starts a new invocation.
func (e *Engine) CloneInContext(src any, ctx *Context) Result {
	if ctx == nil {
		ctx = NewContext()
	}

	if limit := e.config.MaxDepth; limit > 0 && ctx.depth >= limit {
		e.logger.Debug("deepclone: maximum depth exceeded", slog.Int("max_depth", limit))

		return couldNotClone(
			diagnostic.New("Maximum clone depth {{.maxDepth}} exceeded",
				diagnostic.Info{"maxDepth": limit},
			).WithCode(diagnostic.CodeDepthExceeded).WithSeverity(diagnostic.DiagnosticError),
		)
	}

	ctx.depth++
	defer func() { ctx.depth-- }()

	matches := e.FindMatchingRules(src, ctx)

	switch {
	case common.IsEmpty(matches):
		e.logger.Debug("deepclone: no matching rule",
			slog.String("shape", node.Dispatch(src).String()),
			slog.String("fallback", e.config.FallbackRuleID.String()),
		)

		noMatch := diagnostic.New(
			"Could not find matching rule, falling back to rule id {{.fallbackRuleId}}",
			diagnostic.Info{"fallbackRuleId": e.config.FallbackRuleID.String()},
		).WithCode(diagnostic.CodeNoMatch)

		return withProblems(diagnostic.Diagnostics{noMatch}, e.applyFallbackRule(src, ctx))

	case common.IsSingle(matches):
		return e.apply(matches[0], src, ctx)

	default:
		return e.applyOneOfSeveralRules(src, ctx, matches)
	}
}

// FindMatchingRules returns every rule whose predicate accepts src, ordered
// by rule id. A nil ctx is replaced by a fresh one.
func (e *Engine) FindMatchingRules(src any, ctx *Context) []*Rule {
	if ctx == nil {
		ctx = NewContext()
	}

	ids := make([]RuleID, 0, len(e.config.Rules))
	for id := range e.config.Rules {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, RuleID.Compare)

	var matches []*Rule
	for _, id := range ids {
		r := e.config.Rules[id]
		if r == nil || r.Test == nil || r.Clone == nil {
			continue
		}

		if r.Test(src, ctx) {
			matches = append(matches, r)
		}
	}

	return matches
}

// CloneOf clones src and asserts the clone back to T. The zero T is returned
// when the clone is missing or has a different type; the Result tells why.
func CloneOf[T any](e *Engine, src T, override *Override) (T, Result) {
	res := e.Clone(src, override)

	cloned, _ := res.Cloned.(T)
	return cloned, res
}
