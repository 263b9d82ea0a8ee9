package cloner

import (
	"log/slog"

	"deep-cloner/diagnostic"
	"deep-cloner/internal/common"
)

// selectMaxPriorityRules keeps the rules sharing the highest priority.
func selectMaxPriorityRules(rules []*Rule) []*Rule {
	var top []*Rule
	for _, r := range rules {
		switch {
		case len(top) == 0 || r.Priority > top[0].Priority:
			top = []*Rule{r}
		case r.Priority == top[0].Priority:
			top = append(top, r)
		}
	}

	return top
}

// selectRuleToApply resolves several matching rules to one, or to nil when
// the fallback rule has to be used instead.
func selectRuleToApply(rules []*Rule) (*Rule, diagnostic.Diagnostics) {
	top := selectMaxPriorityRules(rules)
	if common.IsSingle(top) {
		return top[0], nil
	}

	var problems diagnostic.Diagnostics
	problems.AddWarning(diagnostic.CodeAmbiguousMatch,
		"Several rules match with same priority {{.ruleIds}}",
		diagnostic.Info{"ruleIds": ruleIDStrings(top), "priority": top[0].Priority},
	)

	var defaults []*Rule
	for _, r := range top {
		if IsDefaultRuleID(r.ID) {
			defaults = append(defaults, r)
		}
	}

	switch {
	case common.IsEmpty(defaults):
		return nil, problems
	case common.IsSingle(defaults):
		return defaults[0], problems
	default:
		problems.AddError(diagnostic.CodeConflictingDefaults,
			"Several matching default rules {{.ruleIds}}",
			diagnostic.Info{"ruleIds": ruleIDStrings(defaults)},
		)
		return nil, problems
	}
}

func (e *Engine) applyOneOfSeveralRules(src any, ctx *Context, rules []*Rule) Result {
	rule, problems := selectRuleToApply(rules)
	if rule != nil {
		return withProblems(problems, e.apply(rule, src, ctx))
	}

	e.logger.Debug("deepclone: unresolved rule tie, using fallback",
		slog.Any("rule_ids", ruleIDStrings(rules)),
		slog.String("fallback", e.config.FallbackRuleID.String()),
	)

	return withProblems(problems, e.applyFallbackRule(src, ctx))
}

func (e *Engine) applyFallbackRule(src any, ctx *Context) Result {
	id := e.config.FallbackRuleID
	if id.IsZero() {
		e.logger.Debug("deepclone: fallback rule id is empty")

		return couldNotClone(
			diagnostic.New("Fallback rule id is falsy - {{.fallbackRuleId}}",
				diagnostic.Info{"fallbackRuleId": id.String()},
			).WithCode(diagnostic.CodeFallbackMissing).WithSeverity(diagnostic.DiagnosticError),
		)
	}

	rule, ok := e.config.Rules[id]
	if !ok || rule == nil || rule.Clone == nil {
		e.logger.Debug("deepclone: fallback rule not registered", slog.String("fallback", id.String()))

		return couldNotClone(
			diagnostic.New("Fallback rule not found by id {{.fallbackRuleId}}",
				diagnostic.Info{"fallbackRuleId": id.String()},
			).WithCode(diagnostic.CodeFallbackMissing).WithSeverity(diagnostic.DiagnosticError),
		)
	}

	return e.apply(rule, src, ctx)
}

func (e *Engine) apply(rule *Rule, src any, ctx *Context) Result {
	return rule.Clone(CloneInput{
		Src:    src,
		Cloner: e,
		Rule:   rule,
		Ctx:    ctx,
	})
}
