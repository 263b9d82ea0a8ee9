package cloner

import (
	"maps"

	"deep-cloner/options"
	"deep-cloner/value"
)

// DefaultRulePrefix namespaces the descriptions of the built-in rule ids.
const DefaultRulePrefix = "$deepclone$>defaultRule."

// DefaultMaxDepth bounds recursion unless configured otherwise.
const DefaultMaxDepth = 10000

// Built-in rule ids. They are symbols, so no user-supplied rule can claim them
// by name.
var (
	PrimitiveRuleID = value.SymbolKey(value.NewSymbol(DefaultRulePrefix + "primitive"))
	RecordRuleID    = value.SymbolKey(value.NewSymbol(DefaultRulePrefix + "record"))
	SequenceRuleID  = value.SymbolKey(value.NewSymbol(DefaultRulePrefix + "sequence"))
)

// IsDefaultRuleID reports whether id belongs to one of the built-in rules.
func IsDefaultRuleID(id RuleID) bool {
	return id == PrimitiveRuleID || id == RecordRuleID || id == SequenceRuleID
}

// Config is the complete configuration of an Engine.
type Config struct {
	// FallbackRuleID names the rule applied when nothing matches or a tie
	// cannot be resolved. The zero id means "no fallback".
	FallbackRuleID RuleID
	// Policy controls what happens to a cloned record's parent chain.
	Policy options.PolicyEnum
	// MaxDepth limits recursion; zero or negative disables the limit.
	MaxDepth int
	// Rules by id. Merge and Engine.SetConfig re-key entries by Rule.ID, so
	// a rule is always found under its own ID.
	Rules map[RuleID]*Rule
}

// Override is a partial Config. Nil fields keep the base value; Rules are
// merged into the base rules, override entries winning on id collision.
type Override struct {
	FallbackRuleID *RuleID
	Policy         *options.PolicyEnum
	MaxDepth       *int
	Rules          map[RuleID]*Rule
}

// NewOverride returns an empty override ready for chaining.
func NewOverride() *Override {
	return &Override{}
}

// SetFallback replaces the fallback rule id.
func (o *Override) SetFallback(id RuleID) *Override {
	o.FallbackRuleID = &id
	return o
}

// SetPolicy replaces the inheritance chain policy.
func (o *Override) SetPolicy(p options.PolicyEnum) *Override {
	o.Policy = &p
	return o
}

// SetMaxDepth replaces the recursion limit.
func (o *Override) SetMaxDepth(n int) *Override {
	o.MaxDepth = &n
	return o
}

// AddRule adds or replaces a rule by its id. A nil rule is ignored.
func (o *Override) AddRule(r *Rule) *Override {
	if r == nil {
		return o
	}

	if o.Rules == nil {
		o.Rules = make(map[RuleID]*Rule)
	}

	o.Rules[r.ID] = r
	return o
}

// DefaultConfig returns the built-in rules for primitives, records and
// sequences with the record rule as fallback and the REFERENCE policy.
func DefaultConfig() Config {
	return Config{
		FallbackRuleID: RecordRuleID,
		Policy:         options.PolicyReference,
		MaxDepth:       DefaultMaxDepth,
		Rules:          DefaultRules(),
	}
}

// DefaultRules returns a fresh map holding the three built-in rules.
func DefaultRules() map[RuleID]*Rule {
	rules := []*Rule{
		{ID: PrimitiveRuleID, Priority: 0, Test: isPrimitive, Clone: clonePrimitive},
		{ID: RecordRuleID, Priority: 0, Test: isPlainRecord, Clone: cloneRecord},
		{ID: SequenceRuleID, Priority: 0, Test: isPlainSequence, Clone: cloneSequence},
	}

	out := make(map[RuleID]*Rule, len(rules))
	for _, r := range rules {
		out[r.ID] = r
	}

	return out
}

// Merge derives a new Config from base and o. Neither input is modified.
func Merge(base Config, o *Override) Config {
	if o == nil {
		return base
	}

	out := base
	if o.FallbackRuleID != nil {
		out.FallbackRuleID = *o.FallbackRuleID
	}

	if o.Policy != nil {
		out.Policy = *o.Policy
	}

	if o.MaxDepth != nil {
		out.MaxDepth = *o.MaxDepth
	}

	out.Rules = keyedRules(base.Rules)
	maps.Copy(out.Rules, keyedRules(o.Rules))

	return out
}

// keyedRules copies rules into a fresh map keyed by each rule's own ID,
// whatever key it was stored under. Nil rules are dropped.
func keyedRules(rules map[RuleID]*Rule) map[RuleID]*Rule {
	out := make(map[RuleID]*Rule, len(rules))
	for _, r := range rules {
		if r != nil {
			out[r.ID] = r
		}
	}

	return out
}
