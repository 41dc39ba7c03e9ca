// File: ring/subtracting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Subtracting brings indices into range by conditional subtraction. It
// accepts any non-zero capacity and wastes no storage, at the price of one
// branch per operation.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
	"github.com/momentics/hioload-ring/storage"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Subtracting[any, *storage.Heap[any, capacity.NonZero]])(nil)

// Subtracting is a ring buffer over storage of any non-zero capacity.
type Subtracting[T any, S api.PartialStorage[T, capacity.NonZero]] struct {
	storage S
	cap     int
	off     int // 0 <= off < cap
	len     int // 0 <= len <= cap
}

// NewSubtracting builds an empty ring over s.
func NewSubtracting[T any, S api.PartialStorage[T, capacity.NonZero]](s S) *Subtracting[T, S] {
	r := new(Subtracting[T, S])
	r.init(s)
	return r
}

// NewSubtractingHeap allocates heap storage of n slots.
func NewSubtractingHeap[T any](n int) (*Subtracting[T, *storage.Heap[T, capacity.NonZero]], error) {
	s, err := storage.NewHeapSize[T, capacity.NonZero](n)
	if err != nil {
		return nil, err
	}
	return NewSubtracting[T](s), nil
}

// NewSubtractingInline places the ring and an Inline block of shape A in
// one allocation.
func NewSubtractingInline[T any, A storage.Array[T]]() *Subtracting[T, *storage.Inline[T, capacity.NonZero, A]] {
	b := new(struct {
		ring  Subtracting[T, *storage.Inline[T, capacity.NonZero, A]]
		slots storage.Inline[T, capacity.NonZero, A]
	})
	b.ring.init(&b.slots)
	return &b.ring
}

func (r *Subtracting[T, S]) init(s S) {
	r.storage = s
	r.cap = s.Capacity().Get()
	r.off, r.len = 0, 0
}

func (r *Subtracting[T, S]) Cap() int { return r.cap }

func (r *Subtracting[T, S]) Len() int { return r.len }

func (r *Subtracting[T, S]) IsFull() bool { return r.len == r.cap }

func (r *Subtracting[T, S]) IsEmpty() bool { return r.len == 0 }

// Storage returns the backing storage.
func (r *Subtracting[T, S]) Storage() S { return r.storage }

// wrap maps i in [0, 2*cap) into [0, cap).
func (r *Subtracting[T, S]) wrap(i int) int {
	if i >= r.cap {
		return i - r.cap
	}
	return i
}

// next advances an offset by one.
func (r *Subtracting[T, S]) next(i int) int {
	if i+1 == r.cap {
		return 0
	}
	return i + 1
}

// Enqueue appends item. When full, (off+len) mod cap == off, so the oldest
// slot is overwritten in place and returned.
func (r *Subtracting[T, S]) Enqueue(item T) (T, bool) {
	slots := r.storage.RawSlots()
	if r.len == r.cap {
		old := slots[r.off]
		slots[r.off] = item
		r.off = r.next(r.off)
		return old, true
	}
	slots[r.wrap(r.off+r.len)] = item
	r.len++
	var zero T
	return zero, false
}

func (r *Subtracting[T, S]) Dequeue() (T, bool) {
	var zero T
	if r.len == 0 {
		return zero, false
	}
	slots := r.storage.RawSlots()
	item := slots[r.off]
	slots[r.off] = zero
	r.off = r.next(r.off)
	r.len--
	return item, true
}

func (r *Subtracting[T, S]) Peek() (T, bool) {
	if r.len == 0 {
		var zero T
		return zero, false
	}
	return r.storage.RawSlots()[r.off], true
}

func (r *Subtracting[T, S]) Clear() {
	slots := r.storage.RawSlots()
	var zero T
	for i, pos := 0, r.off; i < r.len; i, pos = i+1, r.next(pos) {
		slots[pos] = zero
	}
	r.off, r.len = 0, 0
}
