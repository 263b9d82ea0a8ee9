package settings

import (
	"errors"
	"fmt"
	"slices"

	"deep-cloner/cloner"
	"deep-cloner/diagnostic"
	"deep-cloner/internal/match"
	"deep-cloner/options"
	"deep-cloner/value"
)

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// Built-in rule names accepted by fallback_rule.
const (
	RulePrimitive = "primitive"
	RuleRecord    = "record"
	RuleSequence  = "sequence"
)

var (
	ruleNames   = []string{RulePrimitive, RuleRecord, RuleSequence}
	policyNames = []string{
		string(options.PolicyClone),
		string(options.PolicyReference),
		string(options.PolicyExclude),
	}
)

var ErrUnsupportedVersion = errors.New("unsupported settings version")

// File represents the root of a YAML settings file. Absent keys leave the
// engine defaults in place.
type File struct {
	// Version of the settings schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// FallbackRule names the rule applied when nothing else does.
	FallbackRule *string `yaml:"fallback_rule,omitempty"`

	// InheritanceChainPolicy is one of CLONE, REFERENCE or EXCLUDE.
	InheritanceChainPolicy string `yaml:"inheritance_chain_policy,omitempty"`

	// MaxDepth limits recursion; 0 disables the limit.
	MaxDepth *int `yaml:"max_depth,omitempty"`
}

// RuleID resolves a rule name from a settings file to a cloner rule id.
func RuleID(name string) cloner.RuleID {
	switch name {
	case RulePrimitive:
		return cloner.PrimitiveRuleID
	case RuleRecord:
		return cloner.RecordRuleID
	case RuleSequence:
		return cloner.SequenceRuleID
	default:
		return value.StringKey(name)
	}
}

// Override converts the file into a partial cloner configuration.
func (f *File) Override() (*cloner.Override, error) {
	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, f.Version)
	}

	o := cloner.NewOverride()
	if f.FallbackRule != nil {
		o.SetFallback(RuleID(*f.FallbackRule))
	}

	if f.InheritanceChainPolicy != "" {
		o.SetPolicy(options.ParsePolicy(f.InheritanceChainPolicy))
	}

	if f.MaxDepth != nil {
		o.SetMaxDepth(*f.MaxDepth)
	}

	return o, nil
}

// Validate reports settings the engine will accept but degrade on.
// Nothing reported here prevents cloning.
func Validate(f *File) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if f == nil {
		res.AddError("settings_is_nil", "settings file is nil", nil)
		return res
	}

	if f.InheritanceChainPolicy != "" && !options.ParsePolicy(f.InheritanceChainPolicy).IsKnown() {
		info := diagnostic.Info{"policy": f.InheritanceChainPolicy, "fallbackPolicy": string(options.PolicyFallback)}
		tmpl := "inheritance_chain_policy {{.policy}} is not recognized, {{.fallbackPolicy}} will be used"

		if s, ok := match.Closest(f.InheritanceChainPolicy, policyNames); ok {
			info["suggestion"] = s
			tmpl = "inheritance_chain_policy {{.policy}} is not recognized (did you mean {{.suggestion}}?), {{.fallbackPolicy}} will be used"
		}

		res.AddWarning(diagnostic.CodeBadPolicyValue, tmpl, info)
	}

	if f.FallbackRule != nil {
		name := *f.FallbackRule

		switch {
		case name == "":
			res.AddWarning(diagnostic.CodeFallbackMissing,
				"fallback_rule is empty, unmatched values will not be cloned", nil)

		case !slices.Contains(ruleNames, name):
			if s, ok := match.Closest(name, ruleNames); ok {
				res.AddInfo("fallback_rule_custom",
					"fallback_rule {{.rule}} is not a built-in rule (did you mean {{.suggestion}}?)",
					diagnostic.Info{"rule": name, "suggestion": s},
				)
			}
		}
	}

	if f.MaxDepth != nil && *f.MaxDepth < 0 {
		res.AddInfo("max_depth_negative",
			"max_depth {{.maxDepth}} is negative and disables the depth limit",
			diagnostic.Info{"maxDepth": *f.MaxDepth},
		)
	}

	return res
}
