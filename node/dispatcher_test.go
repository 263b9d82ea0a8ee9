package node_test

import (
	"deep-cloner/node"
	"deep-cloner/value"
	"fmt"
	"time"
)

func ExampleDispatch() {
	type point struct{ X, Y int }
	var nilRecord *value.Record
	n := 5

	fmt.Println(node.Dispatch(42))
	fmt.Println(node.Dispatch(nil))
	fmt.Println(node.Dispatch(nilRecord))
	fmt.Println(node.Dispatch(value.NewRecord(nil)))
	fmt.Println(node.Dispatch([]any{1, 2}))
	fmt.Println(node.Dispatch([]int{1, 2}))
	fmt.Println(node.Dispatch([2]string{"a", "b"}))
	fmt.Println(node.Dispatch(map[string]int{"a": 1}))
	fmt.Println(node.Dispatch(point{}))
	fmt.Println(node.Dispatch(&point{}))
	fmt.Println(node.Dispatch(time.Time{}))
	fmt.Println(node.Dispatch(&n))
	fmt.Println(node.Dispatch(func() {}))
	// Output:
	// primitive
	// primitive
	// primitive
	// record
	// sequence
	// slice
	// slice
	// map
	// struct
	// struct
	// struct
	// pointer
	// unknown
}

func ExampleFields() {
	type point struct {
		X, Y   int
		hidden bool
	}

	sym := value.NewSymbol("tag")
	rec := value.NewRecord(nil).Set(value.SymbolKey(sym), "s").Put("b", 2).Put("a", 1)

	for _, f := range node.Fields(rec) {
		fmt.Println(f.Key, f.Value)
	}

	for _, f := range node.Fields(&point{X: 1, Y: 2, hidden: true}) {
		fmt.Println(f.Key, f.Value)
	}

	for _, f := range node.Fields(map[string]int{"z": 26, "a": 1}) {
		fmt.Println(f.Key, f.Value)
	}

	for _, f := range node.Fields([]string{"x", "y"}) {
		fmt.Println(f.Key, f.Value)
	}

	fmt.Println(len(node.Fields(42)), len(node.Fields((*point)(nil))))
	// Output:
	// b 2
	// a 1
	// Symbol(tag) s
	// X 1
	// Y 2
	// a 1
	// z 26
	// 0 x
	// 1 y
	// 0 0
}
