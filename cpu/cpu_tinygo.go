//go:build tinygo

package cpu

import "device/riscv"

// Nop executes a single nop, e.g. for delays of a known cycle count.
//
//go:inline
func Nop() {
	riscv.Asm("nop")
}

// WFI halts the core until an enabled interrupt becomes pending, or an event
// is signalled if the PFIC is configured to execute wfi as wfe. The interrupt
// doesn't have to be enabled globally to wake up the core.
//
//go:inline
func WFI() {
	riscv.Asm("wfi")
}

// Break hands control to the debugger. Without a debugger attached this raises
// a breakpoint exception.
//
//go:inline
func Break() {
	riscv.Asm("ebreak")
}

// EnableInterrupts sets MIE in MSTATUS. It's a single csrsi, so it can't race
// with an interrupt handler modifying MSTATUS.
//
//go:inline
func EnableInterrupts() {
	riscv.Asm("csrsi mstatus, 8")
}

// DisableInterrupts clears MIE in MSTATUS with a single csrci.
//
//go:inline
func DisableInterrupts() {
	riscv.Asm("csrci mstatus, 8")
}

// SP returns the current stack pointer.
//
//go:inline
func SP() uintptr {
	return riscv.AsmFull("mv {}, sp", nil)
}
