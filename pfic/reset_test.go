//go:build !sctlr_reset

package pfic

import "testing"

func TestResetRequest(t *testing.T) {
	p := new(Registers)
	p.SCTLR.Store(0x1234)
	p.requestReset()
	if got := p.CFGR.Load(); got != 0xbeef_0080 {
		t.Errorf("CFGR %#08x, expected %#08x", got, 0xbeef_0080)
	}
	if got := p.SCTLR.Load(); got != 0x1234 {
		t.Errorf("SCTLR modified: %#x", got)
	}
}

func TestResetRequestValue(t *testing.T) {
	if resetRequest != 0xbeef_0080 {
		t.Errorf("CFGR reset request %#08x", uint32(resetRequest))
	}
}
