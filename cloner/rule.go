package cloner

import (
	"deep-cloner/diagnostic"
	"deep-cloner/value"
)

// RuleID identifies a rule: a conventional string name or an opaque symbol.
type RuleID = value.Key

// Rule decides how to clone the values its Test accepts.
// Rules are treated as immutable once registered in a Config.
type Rule struct {
	ID       RuleID
	Priority int // higher wins

	// Test must be free of side effects.
	Test func(src any, ctx *Context) bool

	// Clone may recurse into child values through in.Cloner.
	Clone func(in CloneInput) Result
}

// CloneInput is handed to Rule.Clone.
type CloneInput struct {
	Src    any
	Cloner *Engine
	Rule   *Rule
	Ctx    *Context
}

// Result of cloning one value.
type Result struct {
	Cloned        any
	Problems      diagnostic.Diagnostics
	CouldNotClone bool
}

// Cloned is a successful Result without problems.
func Cloned(v any) Result {
	return Result{Cloned: v}
}

func couldNotClone(problems ...diagnostic.Diagnostic) Result {
	return Result{CouldNotClone: true, Problems: problems}
}

// withProblems prepends problems to the ones already in r.
func withProblems(problems diagnostic.Diagnostics, r Result) Result {
	if len(problems) == 0 {
		return r
	}

	merged := make(diagnostic.Diagnostics, 0, len(problems)+len(r.Problems))
	merged = append(merged, problems...)
	merged = append(merged, r.Problems...)
	r.Problems = merged

	return r
}

func ruleIDStrings(rules []*Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.ID.String())
	}

	return out
}
