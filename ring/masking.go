// File: ring/masking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Masking wraps offsets with a single AND against the storage mask.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
	"github.com/momentics/hioload-ring/storage"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Masking[any, *storage.Heap[any, capacity.Masking]])(nil)

// Masking is a ring buffer over power-of-two storage.
type Masking[T any, S api.PartialStorage[T, capacity.Masking]] struct {
	storage S
	mask    int
	off     int // oldest element, 0 <= off <= mask
	len     int // live elements, 0 <= len <= mask+1
}

// NewMasking builds an empty ring over s. Prior contents of s are
// considered overwritten.
func NewMasking[T any, S api.PartialStorage[T, capacity.Masking]](s S) *Masking[T, S] {
	r := new(Masking[T, S])
	r.init(s)
	return r
}

// NewMaskingHeap allocates power-of-two heap storage of n slots.
func NewMaskingHeap[T any](n int) (*Masking[T, *storage.Heap[T, capacity.Masking]], error) {
	s, err := storage.NewHeapSize[T, capacity.Masking](n)
	if err != nil {
		return nil, err
	}
	return NewMasking[T](s), nil
}

// NewMaskingInline places the ring and an Inline block of shape A in one
// allocation. Panics if len(A) is not a power of two.
func NewMaskingInline[T any, A storage.Array[T]]() *Masking[T, *storage.Inline[T, capacity.Masking, A]] {
	b := new(struct {
		ring  Masking[T, *storage.Inline[T, capacity.Masking, A]]
		slots storage.Inline[T, capacity.Masking, A]
	})
	b.ring.init(&b.slots)
	return &b.ring
}

func (r *Masking[T, S]) init(s S) {
	r.storage = s
	r.mask = s.Capacity().Mask()
	r.off, r.len = 0, 0
}

// Cap returns the full storage capacity.
func (r *Masking[T, S]) Cap() int { return r.mask + 1 }

func (r *Masking[T, S]) Len() int { return r.len }

func (r *Masking[T, S]) IsFull() bool { return r.len == r.mask+1 }

func (r *Masking[T, S]) IsEmpty() bool { return r.len == 0 }

// Storage returns the backing storage.
func (r *Masking[T, S]) Storage() S { return r.storage }

// Enqueue appends item. When full it overwrites the oldest slot and returns
// the displaced element.
func (r *Masking[T, S]) Enqueue(item T) (T, bool) {
	slots := r.storage.RawSlots()
	pos := r.mask & (r.off + r.len)
	if r.len == r.mask+1 {
		old := slots[pos]
		slots[pos] = item
		r.off = r.mask & (r.off + 1)
		return old, true
	}
	slots[pos] = item
	r.len++
	var zero T
	return zero, false
}

// Dequeue removes the oldest element. The vacated slot is zeroed.
func (r *Masking[T, S]) Dequeue() (T, bool) {
	var zero T
	if r.len == 0 {
		return zero, false
	}
	slots := r.storage.RawSlots()
	item := slots[r.off]
	slots[r.off] = zero
	r.off = r.mask & (r.off + 1)
	r.len--
	return item, true
}

// Peek returns the oldest element without removing it.
func (r *Masking[T, S]) Peek() (T, bool) {
	if r.len == 0 {
		var zero T
		return zero, false
	}
	return r.storage.RawSlots()[r.off], true
}

// Clear zeroes every live slot and empties the ring.
func (r *Masking[T, S]) Clear() {
	slots := r.storage.RawSlots()
	var zero T
	for i := 0; i < r.len; i++ {
		slots[r.mask&(r.off+i)] = zero
	}
	r.off, r.len = 0, 0
}
