// Package diagnostic provides the inert, non-fatal problem records the deep
// cloner accumulates instead of failing.
//
// Key capabilities:
//   - Messages rendered from text/template over a structured info map
//   - Severity levels and stable codes for programmatic filtering
//   - Ordered lists that compose across recursion levels
package diagnostic
