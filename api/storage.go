// Package api
// Author: momentics@gmail.com
//
// Storage capability layers backing ring buffers.
//
// Each layer is a strict superset of the previous one. A backend implements
// exactly the layers it can support; engines name the layer they need.
// Storage never inspects which slots hold live elements: that is decided by
// the owner's offset/length bookkeeping alone.

package api

// Storage knows its own capacity. It exposes no element access.
type Storage[T any, C any] interface {
	Capacity() C
}

// PartialStorage exposes its slots as one contiguous region of exactly
// Capacity() elements. Contents of slots outside the owner's live window are
// unspecified. The returned view is valid only while the storage is alive.
type PartialStorage[T any, C any] interface {
	Storage[T, C]
	RawSlots() []T
}

// IndirectPartialStorage is PartialStorage whose slot addresses remain valid
// for the storage's whole lifetime, which makes it safe to borrow.
type IndirectPartialStorage[T any, C any] interface {
	PartialStorage[T, C]
	// Slot returns the address of slot i. Panics if i is out of range.
	Slot(i int) *T
}

// FullStorage guarantees that every slot always holds a valid element.
type FullStorage[T any, C any] interface {
	IndirectPartialStorage[T, C]
	Get() []T
}
