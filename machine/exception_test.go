package machine

import (
	"bytes"
	"testing"

	"github.com/clktmr/ch32v/csr"
)

func TestTrapName(t *testing.T) {
	tests := []struct {
		cause    csr.Cause
		expected string
	}{
		{csr.IllegalInstr, "Illegal Instruction"},
		{csr.EcallM, "Environment Call (M-mode)"},
		{9, "Reserved"},
		{0x7fff_ffff, "Reserved"},
		{0x8000_000c, "Interrupt"},
	}
	for _, tc := range tests {
		if got := TrapName(tc.cause); got != tc.expected {
			t.Errorf("TrapName(%#x) = %q, expected %q", uint32(tc.cause), got, tc.expected)
		}
	}
}

func TestItoa(t *testing.T) {
	var buf [8]byte
	for _, tc := range []struct {
		num      uint32
		expected string
	}{
		{0, "00000000"},
		{0x8000_0026, "80000026"},
		{0xdead_beef, "deadbeef"},
	} {
		if got := string(itoa(buf[:], tc.num)); got != tc.expected {
			t.Errorf("itoa(%#x) = %s", tc.num, got)
		}
	}
}

func TestWriteTrap(t *testing.T) {
	var out bytes.Buffer
	write := func(fd int, p []byte) int {
		if fd != 2 {
			t.Errorf("write to fd %d", fd)
		}
		out.Write(p)
		return len(p)
	}
	writeTrap(write, csr.IllegalInstr, 0x0000_01a4, 0x0000_1880, 0xc000_1073)

	expected := "Unhandled Illegal Instruction Exception\n" +
		"mcause  0x00000002\n" +
		"mepc    0x000001a4\n" +
		"mstatus 0x00001880\n" +
		"mtval   0xc0001073\n"
	if out.String() != expected {
		t.Errorf("report:\n%s\nexpected:\n%s", out.String(), expected)
	}
}
