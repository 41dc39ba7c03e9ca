// File: storage/borrowed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ref and FullRef let a ring buffer run over storage it does not own, for
// example an Inline block that lives in the caller's frame. They forward
// every call to the referent with no added logic. The referent must not be
// handed to another ring while the borrow is in use.

package storage

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
)

// Ref borrows an api.IndirectPartialStorage.
type Ref[T any, C capacity.Capacity] struct {
	target api.IndirectPartialStorage[T, C]
}

// Borrow wraps s without taking ownership.
func Borrow[T any, C capacity.Capacity](s api.IndirectPartialStorage[T, C]) Ref[T, C] {
	return Ref[T, C]{target: s}
}

func (r Ref[T, C]) Capacity() C { return r.target.Capacity() }
func (r Ref[T, C]) RawSlots() []T { return r.target.RawSlots() }
func (r Ref[T, C]) Slot(i int) *T { return r.target.Slot(i) }

// FullRef borrows an api.FullStorage and forwards the full layer too.
type FullRef[T any, C capacity.Capacity] struct {
	target api.FullStorage[T, C]
}

// BorrowFull wraps s without taking ownership.
func BorrowFull[T any, C capacity.Capacity](s api.FullStorage[T, C]) FullRef[T, C] {
	return FullRef[T, C]{target: s}
}

func (r FullRef[T, C]) Capacity() C { return r.target.Capacity() }
func (r FullRef[T, C]) RawSlots() []T { return r.target.RawSlots() }
func (r FullRef[T, C]) Slot(i int) *T { return r.target.Slot(i) }
func (r FullRef[T, C]) Get() []T { return r.target.Get() }

var (
	_ api.IndirectPartialStorage[int, capacity.NonZero] = Ref[int, capacity.NonZero]{}
	_ api.FullStorage[int, capacity.NonZero]            = FullRef[int, capacity.NonZero]{}
)
