//go:build !tinygo

package csr

import "sync/atomic"

// Outside of TinyGo builds there is no core to run the csr instructions on.
// The registers are plain memory then, which lets code configuring the core
// run in host tests.
var regs [1 << 12]uint32

func (r Register) Load() uint32 {
	return atomic.LoadUint32(&regs[r&0xfff])
}

func (r Register) Store(v uint32) {
	atomic.StoreUint32(&regs[r&0xfff], v)
}
