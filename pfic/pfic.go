// Package pfic drives the Programmable Fast Interrupt Controller of the QingKe
// V2 core.
//
// The controller is a single register file at a fixed address, see [Default].
// Enabling, disabling and changing the pending state of a line are single
// writes to write-1-to-set/clear registers and are safe to call from any
// context. Priority and vector-table-free (VTF) configuration are
// read-modify-write sequences on registers shared by four lines or channels.
// They aren't atomic and the package doesn't lock them: callers must either
// configure them before interrupts are enabled or wrap the call in
// [cpu.DisableInterrupts] and [cpu.EnableInterrupts].
//
// None of the functions validate their arguments. Interrupt numbers and
// channels are masked to their register width, lines that aren't implemented
// by the chip behave as the hardware does.
package pfic

// IRQ is an interrupt number as assigned by the chip's interrupt map.
type IRQ uint8

// Interrupts of the core itself. Peripheral interrupts are chip specific.
const (
	NMI       IRQ = 2
	Exception IRQ = 3
	SysTick   IRQ = 12
	Software  IRQ = 14
)

// lineWord returns the index of the register word holding irq's bit.
func lineWord(irq IRQ) int { return int(irq >> 5) }

// lineBit returns the bit of irq within its register word.
func lineBit(irq IRQ) Lines { return 1 << (irq & 0x1f) }

// Enable enables the interrupt line irq.
func (p *Registers) Enable(irq IRQ) {
	p.IENR[lineWord(irq)].Store(lineBit(irq))
}

// Disable disables the interrupt line irq.
func (p *Registers) Disable(irq IRQ) {
	p.IRER[lineWord(irq)].Store(lineBit(irq))
}

// IsEnabled reports whether irq is enabled.
func (p *Registers) IsEnabled(irq IRQ) bool {
	return p.ISR[lineWord(irq)].LoadBits(lineBit(irq)) != 0
}

// IsPending reports whether irq is pending.
func (p *Registers) IsPending(irq IRQ) bool {
	return p.IPR[lineWord(irq)].LoadBits(lineBit(irq)) != 0
}

// SetPending marks irq as pending, e.g. to trigger it by software.
func (p *Registers) SetPending(irq IRQ) {
	p.IPSR[lineWord(irq)].Store(lineBit(irq))
}

// ClearPending removes the pending state of irq.
func (p *Registers) ClearPending(irq IRQ) {
	p.IPRR[lineWord(irq)].Store(lineBit(irq))
}

// IsActive reports whether the handler of irq is currently executing, which
// includes handlers preempted by a higher priority interrupt.
func (p *Registers) IsActive(irq IRQ) bool {
	return p.IACTR[lineWord(irq)].LoadBits(lineBit(irq)) != 0
}

// Status returns the global interrupt status.
func (p *Registers) Status() GlobalStatus {
	return p.GISR.Load()
}
