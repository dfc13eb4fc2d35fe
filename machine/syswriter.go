package machine

import (
	"unsafe"

	"github.com/clktmr/ch32v/hw"
)

// The debug module has two data registers which the debug adapter polls. The low
// byte of data0 holds the number of valid bytes (at most 7), the rest of data0
// and data1 hold the bytes. The adapter clears data0 once it has read them.
var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr uintptr = 0xe000_00f4

const (
	maxChunk = 7

	// Number of polls until an unread chunk is considered lost, i.e. no
	// adapter is attached.
	timeout = 100_000
)

type registers struct {
	data0 hw.U32
	data1 hw.U32
}

var detached bool

// DefaultWrite writes to the SDI debug print registers, regardless if a debug
// adapter is attached or not. If the adapter doesn't pick up the data in time,
// output is dropped until it does. The runtime's putchar is implemented with
// it, so it must not allocate.
func DefaultWrite(fd int, p []byte) int {
	written := len(p)
	for len(p) > 0 {
		if !waitIdle() {
			detached = true
			return written
		}
		detached = false

		data0, data1, n := encodeChunk(p)
		regs.data1.Store(data1)
		regs.data0.Store(data0)

		p = p[n:]
	}

	return written
}

// encodeChunk packs up to maxChunk bytes of p into the data registers and
// returns the number of bytes packed.
func encodeChunk(p []byte) (data0, data1 uint32, n int) {
	n = min(len(p), maxChunk)
	var chunk [maxChunk]byte
	copy(chunk[:], p[:n])

	data0 = uint32(n) |
		uint32(chunk[0])<<8 |
		uint32(chunk[1])<<16 |
		uint32(chunk[2])<<24
	data1 = uint32(chunk[3]) |
		uint32(chunk[4])<<8 |
		uint32(chunk[5])<<16 |
		uint32(chunk[6])<<24
	return
}

// waitIdle waits until the adapter has read the last chunk. Once detached, only a
// single poll is made to avoid stalling every write.
func waitIdle() bool {
	tries := timeout
	if detached {
		tries = 1
	}
	for range tries {
		if regs.data0.Load() == 0 {
			return true
		}
	}
	return false
}

type defaultWriter int

const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
