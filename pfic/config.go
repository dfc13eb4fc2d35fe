package pfic

import "github.com/clktmr/ch32v/csr"

// ConfigureNesting configures how interrupts are entered: eabi selects the
// EABI compatible calling convention, hpe the hardware prologue/epilogue which
// saves and restores registers on interrupt entry and exit, nesting allows
// higher priority interrupts to preempt running handlers.
//
// The setting lives in the INTSYSCR CSR and applies to all interrupts. Change
// it only while interrupts are disabled.
func (p *Registers) ConfigureNesting(eabi, hpe, nesting bool) {
	csr.INTSYSCR.Store(intSysCtl(eabi, hpe, nesting))
}

// The INTSYSCR bits disable a feature when set.
func intSysCtl(eabi, hpe, nesting bool) uint32 {
	var v uint32
	if !eabi {
		v |= csr.EABIEN
	}
	if !hpe {
		v |= csr.HWSTKEN
	}
	if !nesting {
		v |= csr.INESTEN
	}
	return v
}
