package machine

import "github.com/clktmr/ch32v/csr"

var excNames = [12]string{
	csr.InstrMisaligned:  "Instruction Address Misaligned",
	csr.InstrAccessFault: "Instruction Access Fault",
	csr.IllegalInstr:     "Illegal Instruction",
	csr.Breakpoint:       "Breakpoint",
	csr.LoadMisaligned:   "Load Address Misaligned",
	csr.LoadAccessFault:  "Load Access Fault",
	csr.StoreMisaligned:  "Store Address Misaligned",
	csr.StoreAccessFault: "Store Access Fault",
	csr.EcallU:           "Environment Call (U-mode)",
	csr.EcallM:           "Environment Call (M-mode)",
}

// TrapName returns a description of the trap cause.
func TrapName(cause csr.Cause) string {
	if cause.Interrupt() {
		return "Interrupt"
	}
	if code := cause.Code(); int(code) < len(excNames) && excNames[code] != "" {
		return excNames[code]
	}
	return "Reserved"
}

// Exception prints a report of an unhandled trap. The runtime calls it from
// its trap handler with the CSRs saved on trap entry, see
// tinygo/src/runtime/runtime_ch32v003.go.
func Exception(cause csr.Cause, epc, status, tval uint32) {
	writeTrap(DefaultWrite, cause, epc, status, tval)
}

func writeTrap(write func(fd int, p []byte) int, cause csr.Cause, epc, status, tval uint32) {
	var buf [8]byte
	write(2, []byte("Unhandled "))
	write(2, []byte(TrapName(cause)))
	write(2, []byte(" Exception"))

	write(2, []byte("\nmcause  0x"))
	write(2, itoa(buf[:], uint32(cause)))
	write(2, []byte("\nmepc    0x"))
	write(2, itoa(buf[:], epc))
	write(2, []byte("\nmstatus 0x"))
	write(2, itoa(buf[:], status))
	write(2, []byte("\nmtval   0x"))
	write(2, itoa(buf[:], tval))
	write(2, []byte("\n"))
}

func itoa(buf []byte, num uint32) []byte {
	for i := range 8 {
		char := byte(num>>(28-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf[:8]
}
