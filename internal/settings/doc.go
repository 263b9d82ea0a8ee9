// Package settings loads cloner configuration from YAML files.
//
// Example file:
//
//	version: "1"
//	fallback_rule: record
//	inheritance_chain_policy: CLONE
//	max_depth: 500
//
// fallback_rule accepts the built-in rule names (primitive, record, sequence)
// or any string rule id; an explicitly empty value disables the fallback.
package settings
