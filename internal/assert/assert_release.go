//go:build !debug

package assert

// Enabled is false in a normal build: Assert below is inlined away.
const Enabled = false

// Assert is a no-op outside a debug build.
func Assert(cond bool, format string, args ...any) {}
