// File: ring/sparse_masking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SparseMasking keeps masking arithmetic for arbitrary logical sizes by
// leaving storage slots unused. Positions wrap with the storage mask;
// fullness is governed by the artificial capacity.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
	"github.com/momentics/hioload-ring/storage"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SparseMasking[any, *storage.Heap[any, capacity.Masking]])(nil)

// SparseMasking is a masking ring buffer with an artificial capacity no
// larger than its power-of-two storage.
type SparseMasking[T any, S api.PartialStorage[T, capacity.Masking]] struct {
	storage S
	mask    int
	cap     int // artificial capacity, 1 <= cap <= mask+1
	off     int
	len     int
}

// NewSparseMasking builds an empty ring over s holding at most c elements.
//
// Panics if c exceeds the storage capacity. A misconfigured artificial
// capacity is a programming error and is never clamped.
func NewSparseMasking[T any, S api.PartialStorage[T, capacity.Masking]](c capacity.NonZero, s S) *SparseMasking[T, S] {
	r := new(SparseMasking[T, S])
	r.init(c, s)
	return r
}

// NewSparseMaskingHeap allocates the smallest power-of-two heap storage that
// fits n and imposes n as the artificial capacity.
func NewSparseMaskingHeap[T any](n int) (*SparseMasking[T, *storage.Heap[T, capacity.Masking]], error) {
	c, err := capacity.NewNonZero(n)
	if err != nil {
		return nil, err
	}
	s := storage.NewHeap[T](capacity.Must[capacity.Masking](capacity.NextPowerOfTwo(n)))
	return NewSparseMasking[T](c, s), nil
}

// NewSparseMaskingInline places the ring and an Inline block of shape A in
// one allocation. Panics if len(A) is not a power of two or is below c.
func NewSparseMaskingInline[T any, A storage.Array[T]](c capacity.NonZero) *SparseMasking[T, *storage.Inline[T, capacity.Masking, A]] {
	b := new(struct {
		ring  SparseMasking[T, *storage.Inline[T, capacity.Masking, A]]
		slots storage.Inline[T, capacity.Masking, A]
	})
	b.ring.init(c, &b.slots)
	return &b.ring
}

func (r *SparseMasking[T, S]) init(c capacity.NonZero, s S) {
	sc := s.Capacity()
	if c.Get() <= 0 {
		panic(api.ErrInvalidCapacity)
	}
	if c.Get() > sc.Get() {
		panic(fmt.Errorf("%w: %d > %d", api.ErrCapacityExceedsStorage, c.Get(), sc.Get()))
	}
	r.storage = s
	r.mask = sc.Mask()
	r.cap = c.Get()
	r.off, r.len = 0, 0
}

// Cap returns the artificial capacity. The storage may be larger.
func (r *SparseMasking[T, S]) Cap() int { return r.cap }

// StorageCap returns the physical power-of-two capacity.
func (r *SparseMasking[T, S]) StorageCap() int { return r.mask + 1 }

func (r *SparseMasking[T, S]) Len() int { return r.len }

func (r *SparseMasking[T, S]) IsFull() bool { return r.len == r.cap }

func (r *SparseMasking[T, S]) IsEmpty() bool { return r.len == 0 }

// Storage returns the backing storage.
func (r *SparseMasking[T, S]) Storage() S { return r.storage }

// Enqueue appends item, displacing the oldest element once cap are held.
func (r *SparseMasking[T, S]) Enqueue(item T) (T, bool) {
	slots := r.storage.RawSlots()
	pos := (r.off + r.len) & r.mask
	if r.len == r.cap {
		// pos is the slot after the newest element, not the oldest one, so
		// the oldest slot is read and zeroed separately.
		old := slots[r.off]
		var zero T
		slots[r.off] = zero
		slots[pos] = item
		r.off = (r.off + 1) & r.mask
		return old, true
	}
	slots[pos] = item
	r.len++
	var zero T
	return zero, false
}

func (r *SparseMasking[T, S]) Dequeue() (T, bool) {
	var zero T
	if r.len == 0 {
		return zero, false
	}
	slots := r.storage.RawSlots()
	item := slots[r.off]
	slots[r.off] = zero
	r.off = (r.off + 1) & r.mask
	r.len--
	return item, true
}

func (r *SparseMasking[T, S]) Peek() (T, bool) {
	if r.len == 0 {
		var zero T
		return zero, false
	}
	return r.storage.RawSlots()[r.off], true
}

func (r *SparseMasking[T, S]) Clear() {
	slots := r.storage.RawSlots()
	var zero T
	for i := 0; i < r.len; i++ {
		slots[(r.off+i)&r.mask] = zero
	}
	r.off, r.len = 0, 0
}
