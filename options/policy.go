package options

import "strings"

// PolicyEnum selects what happens to a cloned record's inheritance chain.
// It is a string so that unrecognized values survive configuration loading
// and can be reported rather than rejected.
type PolicyEnum string

const (
	PolicyClone     PolicyEnum = "CLONE"     // clone the parent chain up to the root
	PolicyReference PolicyEnum = "REFERENCE" // attach the source's parent by reference
	PolicyExclude   PolicyEnum = "EXCLUDE"   // attach no parent, root inheritance only

	// PolicyFallback is used in place of any unrecognized policy
	PolicyFallback = PolicyReference
)

// IsKnown reports whether p is one of the three recognized policies.
func (p PolicyEnum) IsKnown() bool {
	switch p {
	case PolicyClone, PolicyReference, PolicyExclude:
		return true
	default:
		return false
	}
}

// ParsePolicy normalizes case and surrounding space. Unknown names are
// returned as-is so the cloner can report them.
func ParsePolicy(s string) PolicyEnum {
	p := PolicyEnum(strings.ToUpper(strings.TrimSpace(s)))
	if p.IsKnown() {
		return p
	}

	return PolicyEnum(s)
}
