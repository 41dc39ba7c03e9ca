// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity FIFO contract with overwrite-on-full semantics.

package api

// Ring is a fixed-capacity FIFO that evicts its oldest element when an item
// is enqueued while full. Implementations are not safe for concurrent use.
type Ring[T any] interface {
	// Enqueue appends item. If the ring was full, the oldest element is
	// removed and returned with ok == true.
	Enqueue(item T) (evicted T, ok bool)
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Peek returns the oldest item without removing it.
	Peek() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns the maximum number of items the ring can hold.
	Cap() int
	IsFull() bool
	IsEmpty() bool
	// Clear drops every held item.
	Clear()
}
