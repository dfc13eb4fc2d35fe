//go:build tinygo

package hw

import "runtime/volatile"

func load(p *uint32) uint32 { return volatile.LoadUint32(p) }

func store(p *uint32, v uint32) { volatile.StoreUint32(p, v) }
