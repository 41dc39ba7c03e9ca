// File: storage/inline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

import (
	"unsafe"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
)

// Array is the closed set of array shapes an Inline block can hold. A size
// missing from this set does not compile.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T |
		~[16]T | ~[20]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[96]T |
		~[100]T | ~[128]T | ~[256]T | ~[512]T | ~[1000]T | ~[1024]T |
		~[2048]T | ~[4096]T | ~[8192]T
}

// Inline is storage backed by an array of type A held by value.
//
// The zero value is ready to use; the array length is validated against the
// capacity kind C on the first Capacity call, which every ring constructor
// makes. A [3]T block with capacity.Masking therefore panics at construction.
type Inline[T any, C capacity.Capacity, A Array[T]] struct {
	slots A
}

// NewInline returns an Inline block after validating len(A) for C.
func NewInline[T any, C capacity.Capacity, A Array[T]]() *Inline[T, C, A] {
	s := new(Inline[T, C, A])
	_ = s.Capacity()
	return s
}

// Capacity derives the capacity from the array length.
func (s *Inline[T, C, A]) Capacity() C {
	return capacity.Must[C](len(s.slots))
}

// RawSlots views the array as a slice; no copy is made.
func (s *Inline[T, C, A]) RawSlots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&s.slots)), len(s.slots))
}

// Slot returns the address of slot i.
func (s *Inline[T, C, A]) Slot(i int) *T {
	return &s.slots[i]
}

// Get returns every slot. Go zero-initialises the array, so each slot
// always holds a valid value.
func (s *Inline[T, C, A]) Get() []T {
	return s.RawSlots()
}

var _ api.FullStorage[int, capacity.Masking] = (*Inline[int, capacity.Masking, [4]int])(nil)
