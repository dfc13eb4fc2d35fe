//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops.
//
// The hardware packages mask invalid arguments instead of rejecting them. A
// debug build uses these assertions to find the callers passing them.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert stops in the debugger and panics if b is false.
func Assert(b bool, message string) {}
