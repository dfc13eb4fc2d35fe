//go:build ch32v003

// This file implements target-specific things for the CH32V003. It's copied
// into the TinyGo source tree together with the files in targets/.

package runtime

import (
	"device/riscv"
	"runtime/volatile"
	"unsafe"
)

type timeUnit int64

// The system writer and the trap report are implemented in
// github.com/clktmr/ch32v/machine, which every program imports.

//go:linkname sdiWrite github.com/clktmr/ch32v/machine.DefaultWrite
func sdiWrite(fd int, p []byte) int

//go:linkname trapReport github.com/clktmr/ch32v/machine.Exception
func trapReport(cause, epc, status, tval uint32)

const (
	hclk = 8_000_000 // HSI/3 after reset

	// SysTick counts HCLK/8, one tick per microsecond.
	systickCTLR = 0xe000_f000
	systickCNTR = 0xe000_f008

	systickEnable = 1 << 0
)

//export main
func main() {
	preinit()
	initPeripherals()
	run()
	exit(0)
}

//go:extern handleInterruptASM
var handleInterruptASM [0]uintptr

func initPeripherals() {
	riscv.MTVEC.Set(uintptr(unsafe.Pointer(&handleInterruptASM)))
	(*volatile.Register32)(unsafe.Pointer(uintptr(systickCTLR))).Set(systickEnable)
}

//export handleInterrupt
func handleInterrupt() {
	// Interrupts are dispatched by the vector table of the program, so
	// anything ending up here is fatal.
	cause := riscv.MCAUSE.Get()
	trapReport(uint32(cause), uint32(riscv.MEPC.Get()),
		uint32(riscv.MSTATUS.Get()), uint32(riscv.MTVAL.Get()))
	abort()
}

func putchar(c byte) {
	buf := [1]byte{c}
	sdiWrite(1, buf[:])
}

func getchar() byte {
	// No input over SDI.
	for {
		riscv.Asm("wfi")
	}
}

func buffered() int {
	return 0
}

// The counter is 32 bit wide and wraps after 71 minutes. ticks extends it to
// 64 bit and must be called at least once per wrap.
var tickHigh, tickLast uint32

func ticks() timeUnit {
	now := (*volatile.Register32)(unsafe.Pointer(uintptr(systickCNTR))).Get()
	if now < tickLast {
		tickHigh++
	}
	tickLast = now
	return timeUnit(uint64(tickHigh)<<32 | uint64(now))
}

func ticksToNanoseconds(t timeUnit) int64 {
	return int64(t) * 8_000 / (hclk / 1_000_000)
}

func nanosecondsToTicks(ns int64) timeUnit {
	return timeUnit(ns * (hclk / 1_000_000) / 8_000)
}

func sleepTicks(d timeUnit) {
	target := ticks() + d
	for ticks() < target {
	}
}

func exit(code int) {
	abort()
}

func abort() {
	riscv.Asm("ebreak")
	for {
		riscv.Asm("wfi")
	}
}
