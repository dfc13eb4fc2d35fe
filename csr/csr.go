// Package csr provides access to the machine mode control and status
// registers (CSR) of the QingKe core.
//
// A CSR is addressed by its number, which is encoded into the instruction
// itself. Load and Store therefore switch over the known registers, generated
// by mkcsr.go, and each case compiles to exactly one csrr or csrw instruction.
// Values are stored verbatim, callers are responsible for the bit layout of the
// register.
//
// Accessing a register the core doesn't implement traps. This package doesn't
// try to catch that.
package csr

//go:generate go run mkcsr.go

// Register is the 12-bit address of a CSR.
type Register uint16

// Standard machine mode registers
const (
	MSTATUS   Register = 0x300
	MISA      Register = 0x301 // read-only
	MIE       Register = 0x304
	MTVEC     Register = 0x305
	MSCRATCH  Register = 0x340
	MEPC      Register = 0x341
	MCAUSE    Register = 0x342
	MTVAL     Register = 0x343
	MIP       Register = 0x344
	MCYCLE    Register = 0xb00
	MINSTRET  Register = 0xb02
	MCYCLEH   Register = 0xb80
	MINSTRETH Register = 0xb82
	MVENDORID Register = 0xf11 // read-only
	MARCHID   Register = 0xf12 // read-only
	MIMPID    Register = 0xf13 // read-only
	MHARTID   Register = 0xf14 // read-only
)

// WCH custom registers
const (
	DEBUGCR  Register = 0x7c0 // debug control
	INTSYSCR Register = 0x804 // interrupt system control
)

// MSTATUS bits
const (
	StatusMIE  = 1 << 3 // global interrupt enable
	StatusMPIE = 1 << 7 // MIE before the last trap
	StatusMPP  = 3 << 11
)

// INTSYSCR bits. Each bit disables the feature when set.
const (
	HWSTKEN = 0x01 // hardware prologue/epilogue
	INESTEN = 0x02 // interrupt nesting
	EABIEN  = 0x04 // EABI compatible interrupt entry
)

// Cause is the value of MCAUSE.
type Cause uint32

// Exception codes of a Cause that isn't an interrupt.
const (
	InstrMisaligned Cause = iota
	InstrAccessFault
	IllegalInstr
	Breakpoint
	LoadMisaligned
	LoadAccessFault
	StoreMisaligned
	StoreAccessFault
	EcallU
	_
	_
	EcallM
)

// Interrupt reports whether the trap was caused by an interrupt.
func (c Cause) Interrupt() bool { return c>>31 != 0 }

// Code returns the exception code or, for interrupts, the interrupt number.
func (c Cause) Code() Cause { return c &^ (1 << 31) }
