package hw_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/ch32v/hw"
)

type flags uint32

func TestSize(t *testing.T) {
	var regs struct {
		a hw.R32[flags]
		b hw.RO32[flags]
		c hw.WO32[flags]
		d hw.U32
	}
	if size := unsafe.Sizeof(regs); size != 16 {
		t.Errorf("size %d", size)
	}
	if off := regs.d.Addr() - regs.a.Addr(); off != 12 {
		t.Errorf("offset %d", off)
	}
}

func TestBits(t *testing.T) {
	var r hw.R32[flags]
	r.Store(0x0f0f)
	r.SetBits(0x3000)
	r.ClearBits(0x000f)
	if got := r.Load(); got != 0x3f00 {
		t.Errorf("register %#x", got)
	}
	if got := r.LoadBits(0x1100); got != 0x1100 {
		t.Errorf("bits %#x", got)
	}
}

func TestAccessModes(t *testing.T) {
	var regs struct {
		wo hw.WO32[flags]
		ro hw.RO32[flags]
	}
	regs.wo.Store(0x1234)
	// Write-only registers can't be loaded, look at the memory instead.
	if got := (*hw.U32)(unsafe.Pointer(regs.wo.Addr())).Load(); got != 0x1234 {
		t.Errorf("stored %#x", got)
	}
	if regs.ro.Load() != 0 || regs.ro.LoadBits(^flags(0)) != 0 {
		t.Error("read-only register not zero")
	}
}
