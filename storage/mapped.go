// File: storage/mapped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mapped storage lives outside the Go heap. The garbage collector does not
// scan it, so element types are restricted to pointer-free scalars.

package storage

import (
	"unsafe"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
)

// Scalar lists the pointer-free element types Mapped can hold.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Mapped is storage backed by an anonymous private memory mapping. It only
// implements api.PartialStorage: its slots vanish on Close, so it cannot be
// borrowed through Ref.
type Mapped[T Scalar, C capacity.Capacity] struct {
	region   []byte
	slots    []T
	capacity C
	closed   bool
}

// NewMapped maps zeroed memory for c.Get() elements. Mapping failure panics.
func NewMapped[T Scalar, C capacity.Capacity](c C) *Mapped[T, C] {
	n := c.Get()
	if n <= 0 {
		panic(api.ErrInvalidCapacity)
	}
	var zero T
	region := mapRegion(n * int(unsafe.Sizeof(zero)))
	return &Mapped[T, C]{
		region:   region,
		slots:    unsafe.Slice((*T)(unsafe.Pointer(&region[0])), n),
		capacity: c,
	}
}

func (s *Mapped[T, C]) Capacity() C { return s.capacity }

// RawSlots returns the mapped slots. Panics with api.ErrStorageClosed after Close.
func (s *Mapped[T, C]) RawSlots() []T {
	if s.closed {
		panic(api.ErrStorageClosed)
	}
	return s.slots
}

// Close releases the mapping exactly once. Later calls return nil.
func (s *Mapped[T, C]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.slots = nil
	region := s.region
	s.region = nil
	return unmapRegion(region)
}

var _ api.PartialStorage[uint64, capacity.Masking] = (*Mapped[uint64, capacity.Masking])(nil)
