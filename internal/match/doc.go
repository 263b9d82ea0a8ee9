// Package match suggests the closest known name for a misspelled one.
// It backs the "did you mean" hints in settings diagnostics.
package match
