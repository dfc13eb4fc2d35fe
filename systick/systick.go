// Package systick provides access to the SysTick timer of the QingKe core.
//
// The package only wraps the registers. Tick policy, i.e. clock source,
// auto-reload and interrupt, is configured by the caller through
// [Registers.CTLR].
package systick

import (
	"unsafe"

	"github.com/clktmr/ch32v/hw"
)

// BaseAddr is the physical address of the SysTick register file.
const BaseAddr uintptr = 0xe000_f000

// Default returns the SysTick timer of the running core.
func Default() *Registers {
	return (*Registers)(unsafe.Pointer(BaseAddr))
}

// Control is the content of the CTLR register.
type Control uint32

const (
	Enable     Control = 1 << iota // STE, counter runs
	Interrupt                      // STIE, interrupt on compare match
	ClockHCLK                      // STCLK, count HCLK instead of HCLK/8
	AutoReload                     // STRE, restart from zero on compare match

	SoftwareInterrupt Control = 1 << 31 // SWIE, trigger the interrupt by software

	ClockHCLKDiv8 Control = 0
)

// Status is the content of the SR register.
type Status uint32

// CountFlag is set on compare match. Write zero to clear.
const CountFlag Status = 1 << 0

// Registers is the SysTick register file.
type Registers struct {
	CTLR hw.R32[Control] // 0x00
	SR   hw.R32[Status]  // 0x04
	CNTR hw.U32          // 0x08
	_    uint32
	CMPR hw.U32 // 0x10
	_    uint32
}

// Counter returns the current counter value.
func (t *Registers) Counter() uint32 {
	return t.CNTR.Load()
}

// SetCounter sets the counter to v.
func (t *Registers) SetCounter(v uint32) {
	t.CNTR.Store(v)
}

// Compare returns the compare value.
func (t *Registers) Compare() uint32 {
	return t.CMPR.Load()
}

// SetCompare sets the compare value.
func (t *Registers) SetCompare(v uint32) {
	t.CMPR.Store(v)
}
