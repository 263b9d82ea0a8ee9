// Package value provides the dynamic value model the deep cloner operates on.
//
// Go values have no prototype objects, so composite graphs are expressed with:
//   - Record: ordered own properties plus an optional parent (inheritance) link
//   - []any: plain ordered sequences
//   - Symbol: opaque unique keys that never collide with string names
//   - Key: a property key, either a conventional string name or a Symbol
//
// Everything else (nil, booleans, numbers, strings, symbols, *big.Int) is a
// primitive and is never decomposed.
package value
