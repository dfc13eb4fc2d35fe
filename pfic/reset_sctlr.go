//go:build sctlr_reset

package pfic

func (p *Registers) requestReset() {
	p.SCTLR.SetBits(SysReset)
}
