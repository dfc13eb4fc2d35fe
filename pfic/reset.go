package pfic

// SystemReset resets the whole chip. It never returns.
//
// By default the reset is requested through CFGR, protected by a key code.
// Build with the sctlr_reset tag to request it through SCTLR instead.
func (p *Registers) SystemReset() {
	p.requestReset()
	for {
	}
}
