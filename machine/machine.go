// Package machine implements the hooks the runtime of the ch32v003 target links
// to: the system writer behind print and panic, and the trap report. Every
// program must import it, usually as
//
//	import _ "github.com/clktmr/ch32v/machine"
package machine

import "unsafe"

// Electronic signature, programmed by the factory.
const (
	esigFlashSize = 0x1fff_f7e0
	esigUID       = 0x1fff_f7e8
)

// FlashSize returns the size of the code flash in bytes.
func FlashSize() int {
	return int(*(*uint16)(unsafe.Pointer(uintptr(esigFlashSize)))) << 10
}

// UID returns the 96-bit unique ID of the chip.
func UID() (uid [3]uint32) {
	for i := range uid {
		uid[i] = *(*uint32)(unsafe.Pointer(uintptr(esigUID + 4*i)))
	}
	return
}
