package pfic

import "github.com/clktmr/ch32v/debug"

// Channel is one of the four vector-table-free (VTF) interrupt channels. A VTF
// channel jumps directly to a fixed handler address when its interrupt fires,
// skipping the vector table lookup.
type Channel uint8

// Number of VTF channels.
const Channels = 4

func (ch Channel) index() int { return int(ch & 0x3) }

// ConfigureFastIRQ binds channel ch to irq and the handler at addr. Bit 0 of
// addr is dropped, the handler must be 2 byte aligned.
//
// The channel is left disabled, call [Registers.EnableFastIRQ] afterwards. This
// way a half configured channel never fires.
//
// The channel to interrupt mapping of all channels is updated by
// read-modify-write, see the package documentation.
func (p *Registers) ConfigureFastIRQ(ch Channel, addr uintptr, irq IRQ) {
	debug.Assert(ch < Channels, "pfic: invalid vtf channel")
	debug.Assert(addr&1 == 0, "pfic: unaligned vtf handler")

	p.VTFIDR.Store(packVTFID(p.VTFIDR.Load(), ch, irq))
	p.VTFADDRR[ch.index()].Store(vtfAddr(addr))
}

// packVTFID replaces the byte of channel ch in the VTFIDR word with irq.
func packVTFID(word uint32, ch Channel, irq IRQ) uint32 {
	shift := uint(ch.index()) << 3
	word &^= vtfID << shift
	return word | uint32(irq)<<shift
}

// vtfAddr returns the VTFADDRR value for a handler at addr, with the channel
// disabled.
func vtfAddr(addr uintptr) uint32 {
	return uint32(addr) & vtfAddrMask
}

// EnableFastIRQ enables channel ch.
func (p *Registers) EnableFastIRQ(ch Channel) {
	p.VTFADDRR[ch.index()].SetBits(vtfEn)
}

// DisableFastIRQ disables channel ch.
func (p *Registers) DisableFastIRQ(ch Channel) {
	p.VTFADDRR[ch.index()].ClearBits(vtfEn)
}

// FastIRQ returns the configuration of channel ch.
func (p *Registers) FastIRQ(ch Channel) (irq IRQ, addr uintptr, enabled bool) {
	shift := uint(ch.index()) << 3
	irq = IRQ(p.VTFIDR.Load() >> shift)
	v := p.VTFADDRR[ch.index()].Load()
	return irq, uintptr(v & vtfAddrMask), v&vtfEn != 0
}
