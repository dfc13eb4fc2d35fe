package pfic

import "github.com/clktmr/ch32v/cpu"

// The SCTLR setters below are read-modify-write. Don't call them concurrently
// from thread and interrupt context.

// SetEvent sets the event flag. A core waiting in [Registers.WaitForEvent]
// wakes up, otherwise the next wait returns immediately.
func (p *Registers) SetEvent() {
	p.SCTLR.SetBits(EventSet)
}

// WaitForInterrupt halts the core until an enabled interrupt becomes pending.
// There is no timeout.
func (p *Registers) WaitForInterrupt() {
	p.SCTLR.ClearBits(WFIToWFE)
	cpu.WFI()
}

// WaitForEvent halts the core until an event is signalled, either by
// [Registers.SetEvent], by an event input or by a pending interrupt if
// SEVOnPend is set. There is no timeout.
func (p *Registers) WaitForEvent() {
	p.SCTLR.SetBits(WFIToWFE)
	cpu.WFI()
}

// SetSleepOnExit makes the core sleep after returning from the last active
// interrupt handler instead of resuming thread mode.
func (p *Registers) SetSleepOnExit(on bool) { p.setCtl(SleepOnExit, on) }

// SetSleepDeep selects deep sleep instead of sleep for wfi and wfe.
func (p *Registers) SetSleepDeep(on bool) { p.setCtl(SleepDeep, on) }

// SetEventOnPending lets a newly pending interrupt wake up the core from
// [Registers.WaitForEvent], even if the interrupt is disabled.
func (p *Registers) SetEventOnPending(on bool) { p.setCtl(SEVOnPend, on) }

func (p *Registers) setCtl(flag SysCtl, on bool) {
	if on {
		p.SCTLR.SetBits(flag)
	} else {
		p.SCTLR.ClearBits(flag)
	}
}
