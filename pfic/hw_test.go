//go:build tinygo

package pfic_test

import (
	"testing"

	"github.com/clktmr/ch32v/cpu"
	"github.com/clktmr/ch32v/pfic"
)

// The tests in this file run against the real controller. The line is only
// enabled while interrupts are disabled globally, so its handler never runs.
const testIRQ pfic.IRQ = 38 // TIM2 on CH32V003, unused by the tests

func withoutInterrupts(t *testing.T) {
	cpu.DisableInterrupts()
	t.Cleanup(cpu.EnableInterrupts)
}

func TestEnableDisable(t *testing.T) {
	withoutInterrupts(t)
	p := pfic.Default()
	t.Cleanup(func() { p.Disable(testIRQ) })

	others := p.ISR[testIRQ>>5].Load() &^ (1 << (testIRQ & 31))

	for range 2 {
		p.Enable(testIRQ)
		if !p.IsEnabled(testIRQ) {
			t.Fatal("not enabled")
		}
	}
	if got := p.ISR[testIRQ>>5].Load() &^ (1 << (testIRQ & 31)); got != others {
		t.Errorf("other lines changed: %#x, expected %#x", got, others)
	}

	for range 2 {
		p.Disable(testIRQ)
		if p.IsEnabled(testIRQ) {
			t.Fatal("not disabled")
		}
	}
}

func TestPending(t *testing.T) {
	withoutInterrupts(t)
	p := pfic.Default()
	t.Cleanup(func() {
		p.ClearPending(testIRQ)
		p.Disable(testIRQ)
	})

	for _, enabled := range []bool{false, true} {
		if enabled {
			p.Enable(testIRQ)
		}
		p.SetPending(testIRQ)
		if !p.IsPending(testIRQ) {
			t.Errorf("not pending, enabled %v", enabled)
		}
		p.ClearPending(testIRQ)
		if p.IsPending(testIRQ) {
			t.Errorf("still pending, enabled %v", enabled)
		}
		if p.IsActive(testIRQ) {
			t.Errorf("active, enabled %v", enabled)
		}
	}
}

func TestPriorityReadback(t *testing.T) {
	withoutInterrupts(t)
	p := pfic.Default()
	reg := &p.IPRIOR[testIRQ>>2]
	saved := reg.Load()
	t.Cleanup(func() { reg.Store(saved) })

	shift := (testIRQ & 3) * 8
	for _, prio := range []pfic.Priority{0x00, 0x7f, 0xc0, 0xff} {
		p.SetPriority(testIRQ, prio)
		got := reg.Load()
		if byte(got>>shift) != byte(prio&0xc0) {
			t.Errorf("stored %#x, expected %#x", byte(got>>shift), prio&0xc0)
		}
		if got&^(0xff<<shift) != saved&^(0xff<<shift) {
			t.Errorf("neighbours changed: %#08x, saved %#08x", got, saved)
		}
	}
}

func TestFastIRQ(t *testing.T) {
	withoutInterrupts(t)
	const ch = 3
	p := pfic.Default()
	savedID, savedAddr := p.VTFIDR.Load(), p.VTFADDRR[ch].Load()
	t.Cleanup(func() {
		p.VTFADDRR[ch].Store(savedAddr)
		p.VTFIDR.Store(savedID)
	})

	p.ConfigureFastIRQ(ch, 0x0000_0124, testIRQ)
	irq, addr, enabled := p.FastIRQ(ch)
	if irq != testIRQ || addr != 0x124 || enabled {
		t.Fatalf("configured irq %d addr %#x enabled %v", irq, addr, enabled)
	}

	p.EnableFastIRQ(ch)
	if _, addr, enabled = p.FastIRQ(ch); addr != 0x124 || !enabled {
		t.Errorf("enabled addr %#x enabled %v", addr, enabled)
	}
	p.DisableFastIRQ(ch)
	if _, _, enabled = p.FastIRQ(ch); enabled {
		t.Error("not disabled")
	}
}

func TestWaitForInterrupt(t *testing.T) {
	withoutInterrupts(t)
	p := pfic.Default()
	saved := p.SCTLR.Load()
	t.Cleanup(func() {
		p.ClearPending(testIRQ)
		p.Disable(testIRQ)
		p.SCTLR.Store(saved &^ pfic.EventSet)
	})

	// A pending and enabled line wakes up the core immediately, even with
	// interrupts disabled globally.
	p.SCTLR.SetBits(pfic.WFIToWFE)
	p.Enable(testIRQ)
	p.SetPending(testIRQ)
	p.WaitForInterrupt()

	if p.SCTLR.LoadBits(pfic.WFIToWFE) != 0 {
		t.Error("executed as wfe")
	}
}

func TestWaitForEvent(t *testing.T) {
	withoutInterrupts(t)
	p := pfic.Default()
	saved := p.SCTLR.Load()
	t.Cleanup(func() { p.SCTLR.Store(saved &^ pfic.EventSet) })

	// The event is latched, so the wait returns immediately.
	p.SetEvent()
	p.WaitForEvent()

	if p.SCTLR.LoadBits(pfic.WFIToWFE) == 0 {
		t.Error("executed as wfi")
	}
}
