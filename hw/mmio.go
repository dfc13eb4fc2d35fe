// Package hw provides typed 32-bit registers for memory mapped I/O.
//
// R32 is a read-write register, RO32 and WO32 remove the operations the
// hardware doesn't support. All types have the size and alignment of the
// underlying register, so they can be used to describe a register file bit for
// bit.
//
// Built with TinyGo, every access is volatile. Other builds access the value
// with atomic loads and stores, which lets register files in ordinary memory
// be tested on the host.
package hw

import "unsafe"

// Bits is the constraint of a register's content type.
type Bits interface{ ~uint32 }

// R32 is a read-write 32-bit register.
type R32[T Bits] struct {
	v uint32
}

// U32 is a register holding a plain number.
type U32 = R32[uint32]

func (r *R32[T]) Load() T {
	return T(load(&r.v))
}

func (r *R32[T]) Store(v T) {
	store(&r.v, uint32(v))
}

func (r *R32[T]) LoadBits(mask T) T {
	return T(load(&r.v)) & mask
}

// SetBits sets the bits in mask by read-modify-write.
func (r *R32[T]) SetBits(mask T) {
	store(&r.v, load(&r.v)|uint32(mask))
}

// ClearBits clears the bits in mask by read-modify-write.
func (r *R32[T]) ClearBits(mask T) {
	store(&r.v, load(&r.v)&^uint32(mask))
}

func (r *R32[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(&r.v))
}

// RO32 is a read-only 32-bit register. Writes are ignored by the hardware.
type RO32[T Bits] struct {
	r R32[T]
}

func (r *RO32[T]) Load() T {
	return r.r.Load()
}

func (r *RO32[T]) LoadBits(mask T) T {
	return r.r.LoadBits(mask)
}

func (r *RO32[T]) Addr() uintptr {
	return r.r.Addr()
}

// WO32 is a write-only 32-bit register. Reads return undefined data, so only
// full stores are offered. Read-modify-write on such a register is always a
// bug.
type WO32[T Bits] struct {
	r R32[T]
}

func (r *WO32[T]) Store(v T) {
	r.r.Store(v)
}

func (r *WO32[T]) Addr() uintptr {
	return r.r.Addr()
}
