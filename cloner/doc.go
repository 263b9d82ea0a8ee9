// Package cloner provides a rule-driven deep-copy engine for value graphs.
//
// Cloning pipeline for every value:
//  1. Evaluate every registered rule's predicate
//  2. No match: report it and apply the fallback rule
//  3. One match: apply it
//  4. Several matches: keep the highest priority; ties are reported and
//     resolved in favor of a single built-in default rule, otherwise the
//     fallback rule is applied
//
// Rules recurse into child values through the Engine handed to them, so the
// whole graph is cloned by one dispatch mechanism. Problems never abort the
// traversal: they are accumulated as diagnostics in the Result, and a
// subtree that cannot be cloned yields a nil placeholder with CouldNotClone
// set for that subtree only.
//
// Cycles and shared sub-structure are preserved by the built-in composite
// rules through an identity map kept in the per-call Context. Independently,
// recursion deeper than Config.MaxDepth fails the offending subtree with a
// depth-exceeded diagnostic.
package cloner
