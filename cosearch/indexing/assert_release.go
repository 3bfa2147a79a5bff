//go:build !cosearch_debug

package indexing

const debugAssertions = false

// assertf compiles to nothing unless built with -tags cosearch_debug.
func assertf(bool, string, ...any) {}
