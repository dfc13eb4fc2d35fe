package pfic

// Priority of an interrupt line. Only the two most significant bits are
// implemented: bit 7 selects the pre-emption priority, bit 6 the sub-priority.
// Lower values take precedence.
type Priority uint8

const (
	PrioHighest Priority = 0x00
	PrioHigh    Priority = 0x40
	PrioLow     Priority = 0x80
	PrioLowest  Priority = 0xc0

	prioMask  Priority = 0xc0
	prioField uint32   = 0xff
)

// MakePriority combines a pre-emption and a sub-priority level, each 0 or 1.
func MakePriority(preempt, sub uint8) Priority {
	return Priority(preempt&1)<<7 | Priority(sub&1)<<6
}

// PreemptLevel returns the pre-emption level. Handlers of level 0 preempt
// handlers of level 1.
func (p Priority) PreemptLevel() uint8 { return uint8(p >> 7) }

// SubLevel returns the sub-priority, which orders pending interrupts of the
// same pre-emption level.
func (p Priority) SubLevel() uint8 { return uint8(p>>6) & 1 }

// SetPriority sets the priority of irq. The unimplemented low bits of prio are
// dropped.
//
// Four lines share one register, which is updated by read-modify-write. If an
// interrupt handler changes the priority of a line in the same register
// between the read and the write, one of both updates is lost. See the package
// documentation.
func (p *Registers) SetPriority(irq IRQ, prio Priority) {
	reg := &p.IPRIOR[irq>>2]
	reg.Store(packPriority(reg.Load(), irq, prio))
}

// packPriority replaces the byte of irq in the IPRIOR word with prio.
func packPriority(word uint32, irq IRQ, prio Priority) uint32 {
	shift := uint(irq&0x3) << 3
	word &^= prioField << shift
	return word | uint32(prio&prioMask)<<shift
}

// Priority returns the priority of irq.
func (p *Registers) Priority(irq IRQ) Priority {
	shift := uint(irq&0x3) << 3
	return Priority(p.IPRIOR[irq>>2].Load() >> shift)
}

// SetThreshold masks all interrupts with a priority value greater or equal to
// prio. A threshold of zero disables masking.
func (p *Registers) SetThreshold(prio Priority) {
	p.ITHRESDR.Store(uint32(prio & prioMask))
}

// Threshold returns the current priority threshold.
func (p *Registers) Threshold() Priority {
	return Priority(p.ITHRESDR.Load())
}
