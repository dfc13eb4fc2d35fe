//go:build !tinygo

package cpu

import (
	"unsafe"

	"github.com/clktmr/ch32v/csr"
)

func Nop() {}

func WFI() {}

func Break() {}

func EnableInterrupts() {
	csr.MSTATUS.Store(csr.MSTATUS.Load() | csr.StatusMIE)
}

func DisableInterrupts() {
	csr.MSTATUS.Store(csr.MSTATUS.Load() &^ csr.StatusMIE)
}

//go:noinline
func SP() uintptr {
	var top uintptr
	return uintptr(unsafe.Pointer(&top))
}
