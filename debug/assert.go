//go:build debug

package debug

import "github.com/clktmr/ch32v/cpu"

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = true

// Assert stops in the debugger if b is false and panics once resumed.
func Assert(b bool, message string) {
	if !b {
		cpu.Break()
		panic(message)
	}
}
