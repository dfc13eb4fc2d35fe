package pfic_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/ch32v/pfic"
	chtesting "github.com/clktmr/ch32v/testing"
)

func TestMain(m *testing.M) { chtesting.TestMain(m) }

func TestLayout(t *testing.T) {
	var r pfic.Registers
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"ISR", unsafe.Offsetof(r.ISR), 0x000},
		{"IPR", unsafe.Offsetof(r.IPR), 0x020},
		{"ITHRESDR", unsafe.Offsetof(r.ITHRESDR), 0x040},
		{"CFGR", unsafe.Offsetof(r.CFGR), 0x048},
		{"GISR", unsafe.Offsetof(r.GISR), 0x04c},
		{"VTFIDR", unsafe.Offsetof(r.VTFIDR), 0x050},
		{"VTFADDRR", unsafe.Offsetof(r.VTFADDRR), 0x060},
		{"IENR", unsafe.Offsetof(r.IENR), 0x100},
		{"IRER", unsafe.Offsetof(r.IRER), 0x180},
		{"IPSR", unsafe.Offsetof(r.IPSR), 0x200},
		{"IPRR", unsafe.Offsetof(r.IPRR), 0x280},
		{"IACTR", unsafe.Offsetof(r.IACTR), 0x300},
		{"IPRIOR", unsafe.Offsetof(r.IPRIOR), 0x400},
		{"SCTLR", unsafe.Offsetof(r.SCTLR), 0xd10},
	}
	for _, tc := range tests {
		if tc.offset != tc.want {
			t.Errorf("%s at %#x, expected %#x", tc.name, tc.offset, tc.want)
		}
	}
	if size := unsafe.Sizeof(r); size != 0xd14 {
		t.Errorf("size %#x, expected %#x", size, 0xd14)
	}
}

func TestDefault(t *testing.T) {
	p := pfic.Default()
	if p != pfic.Default() {
		t.Fatal("handle not unique")
	}
	if addr := p.SCTLR.Addr(); addr != pfic.BaseAddr+0xd10 {
		t.Errorf("SCTLR at %#x", addr)
	}
}

func TestGlobalStatus(t *testing.T) {
	s := pfic.GlobalStatus(0x302)
	if s.NestingLevel() != 2 || !s.Active() || !s.Pending() {
		t.Errorf("decoded %v %v %v", s.NestingLevel(), s.Active(), s.Pending())
	}
	if s = pfic.GlobalStatus(0); s.NestingLevel() != 0 || s.Active() || s.Pending() {
		t.Errorf("decoded %v %v %v", s.NestingLevel(), s.Active(), s.Pending())
	}
}
