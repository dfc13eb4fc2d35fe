package pfic

import (
	"unsafe"

	"github.com/clktmr/ch32v/hw"
)

// BaseAddr is the physical address of the PFIC register file.
const BaseAddr uintptr = 0xe000_e000

// Default returns the interrupt controller of the running core. There is only
// one, every call returns the same handle.
func Default() *Registers {
	return (*Registers)(unsafe.Pointer(BaseAddr))
}

// Lines holds one bit per interrupt line, IRQ n is bit n&31 of word n>>5.
type Lines uint32

// GlobalStatus is the content of the GISR register.
type GlobalStatus uint32

const (
	nestingLevel  GlobalStatus = 0xff
	globalActive  GlobalStatus = 1 << 8
	globalPending GlobalStatus = 1 << 9
)

// NestingLevel returns the current interrupt nesting depth.
func (s GlobalStatus) NestingLevel() int { return int(s & nestingLevel) }

// Active reports whether any interrupt is currently being serviced.
func (s GlobalStatus) Active() bool { return s&globalActive != 0 }

// Pending reports whether any interrupt is pending.
func (s GlobalStatus) Pending() bool { return s&globalPending != 0 }

// ConfigFlag is the content of the CFGR register.
type ConfigFlag uint32

const (
	ResetSys ConfigFlag = 0x0000_0080

	// A write to CFGR is only accepted together with one of these keys in
	// the upper half word.
	KeyCode1 ConfigFlag = 0xfa05_0000
	KeyCode2 ConfigFlag = 0xbcaf_0000
	KeyCode3 ConfigFlag = 0xbeef_0000
)

// SysCtl is the content of the SCTLR register.
type SysCtl uint32

const (
	SleepOnExit SysCtl = 1 << (iota + 1) // enter sleep after leaving the last interrupt
	SleepDeep                            // sleep is deep sleep
	WFIToWFE                             // wfi executes as wait for event
	SEVOnPend                            // pending interrupts wake up from wfe
	EventSet                             // set the event flag

	SysReset SysCtl = 1 << 31
)

const (
	vtfID       = 0xff
	vtfAddrMask = 0xffff_fffe
	vtfEn       = 0x1
)

// Registers is the PFIC register file. The layout matches the hardware, the
// reserved gaps are part of it.
type Registers struct {
	ISR      [8]hw.RO32[Lines] // 0x000 enabled
	IPR      [8]hw.RO32[Lines] // 0x020 pending
	ITHRESDR hw.U32            // 0x040 priority threshold
	_        uint32
	CFGR     hw.R32[ConfigFlag]    // 0x048
	GISR     hw.RO32[GlobalStatus] // 0x04c
	VTFIDR   hw.U32                // 0x050 irq of each vtf channel, one byte each
	_        [3]uint32
	VTFADDRR [4]hw.U32 // 0x060 vtf handler address, bit 0 enables
	_        [36]uint32
	IENR     [8]hw.WO32[Lines] // 0x100 write 1 to enable
	_        [24]uint32
	IRER     [8]hw.WO32[Lines] // 0x180 write 1 to disable
	_        [24]uint32
	IPSR     [8]hw.WO32[Lines] // 0x200 write 1 to set pending
	_        [24]uint32
	IPRR     [8]hw.WO32[Lines] // 0x280 write 1 to clear pending
	_        [24]uint32
	IACTR    [8]hw.R32[Lines] // 0x300 active
	_        [56]uint32
	IPRIOR   [64]hw.U32 // 0x400 priority, one byte per line
	_        [516]uint32
	SCTLR    hw.R32[SysCtl] // 0xd10
}
