package board

import "fmt"

// debugAssertions guards programmer-invariant checks (spec.md §7): panics
// that indicate a bug in the caller, not bad input. Flip to false for a
// release build to elide the checks entirely.
const debugAssertions = true

// assertf panics with a formatted message when cond is false and
// debugAssertions is enabled; it is a no-op otherwise.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
