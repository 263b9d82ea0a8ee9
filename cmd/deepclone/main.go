// Package main provides the CLI entrypoint for deepclone.
//
// deepclone reads a YAML document, deep-clones it with the rule engine and
// prints the clone together with any diagnostics:
//   - clone: clone a document and print the result
//   - rules: list the rules matching a document's root value
//   - init: write a settings file with the default configuration
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess       = 0
	ExitCouldNotClone = 1
	ExitError         = 2
)

func main() {
	err := newRootCmd().Execute()

	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errCouldNotClone):
		os.Exit(ExitCouldNotClone)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitError)
	}
}
