//go:build !sctlr_reset

package pfic

const resetRequest = KeyCode3 | ResetSys

func (p *Registers) requestReset() {
	p.CFGR.Store(resetRequest)
}
