//go:build cosearch_debug

package indexing

import "fmt"

const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("indexing: "+format, args...))
	}
}
