// File: storage/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap is a single block sized at construction. It is never reallocated.

package storage

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
)

// Heap is storage backed by one slice allocated for exactly Capacity()
// elements. A zero-size T allocates nothing. Allocation failure is fatal,
// as with any Go heap exhaustion.
type Heap[T any, C capacity.Capacity] struct {
	slots    []T
	capacity C
}

// NewHeap allocates storage for c.Get() elements.
func NewHeap[T any, C capacity.Capacity](c C) *Heap[T, C] {
	if c.Get() <= 0 {
		panic(api.ErrInvalidCapacity)
	}
	return &Heap[T, C]{
		slots:    make([]T, c.Get()),
		capacity: c,
	}
}

// NewHeapSize validates n for kind C and allocates.
func NewHeapSize[T any, C capacity.Capacity](n int) (*Heap[T, C], error) {
	c, err := capacity.From[C](n)
	if err != nil {
		return nil, err
	}
	return NewHeap[T](c), nil
}

func (s *Heap[T, C]) Capacity() C { return s.capacity }

func (s *Heap[T, C]) RawSlots() []T { return s.slots }

func (s *Heap[T, C]) Slot(i int) *T { return &s.slots[i] }

func (s *Heap[T, C]) Get() []T { return s.slots }

var _ api.FullStorage[int, capacity.NonZero] = (*Heap[int, capacity.NonZero])(nil)
