//go:build debug

// Package assert provides an opt-in internal invariant checker for the
// region engine. It compiles to a no-op unless the module is built with
// the "debug" tag, matching the escape-hatch pattern used for debug
// assertions elsewhere in the example pack.
package assert

import "fmt"

// Enabled is true when this module is built with -tags debug.
const Enabled = true

// Assert panics if cond is false. Only compiled in with the debug tag, so
// it carries no cost (and no behavior difference) in a normal build.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("region: internal assertion failed: "+format, args...))
	}
}
