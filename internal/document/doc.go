// Package document converts YAML documents to and from the cloner's value
// model, keeping mapping key order.
//
// Conventions:
//   - mappings become *value.Record, sequences become []any
//   - a "$parent" key holding a mapping sets the record's parent
//   - keys tagged !symbol become symbol keys; equal descriptions within one
//     document share one symbol
//   - scalars tagged !bigint become *big.Int
package document
