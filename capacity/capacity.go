// File: capacity/capacity.go
// Package capacity provides validated ring buffer sizes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// NonZero accepts any positive size, PowerOfTwo requires an exact power of
// two, and Masking stores the bitmask (value-1) of a power of two so that
// offsets wrap with a single AND.

package capacity

import (
	"math/bits"
	"strconv"
)

// Capacity is the set of validated capacity kinds.
type Capacity interface {
	NonZero | PowerOfTwo | Masking
	Get() int
	String() string
}

// NonZero is a strictly positive capacity. The zero value is not valid;
// obtain one from NewNonZero, From or Must.
type NonZero struct {
	value int
}

// NewNonZero validates n as a non-zero capacity.
func NewNonZero(n int) (NonZero, error) {
	if n <= 0 {
		return NonZero{}, &NonZeroCapacityError{Value: n}
	}
	return NonZero{value: n}, nil
}

// Get returns the capacity as a plain size.
func (c NonZero) Get() int { return c.value }

func (c NonZero) String() string { return strconv.Itoa(c.value) }

// PowerOfTwo is a capacity that is an exact power of two.
type PowerOfTwo struct {
	value int
}

// NewPowerOfTwo validates n as a power-of-two capacity.
func NewPowerOfTwo(n int) (PowerOfTwo, error) {
	if !IsPowerOfTwo(n) {
		return PowerOfTwo{}, &PowerOfTwoCapacityError{Value: n}
	}
	return PowerOfTwo{value: n}, nil
}

// Get returns the capacity as a plain size.
func (c PowerOfTwo) Get() int { return c.value }

func (c PowerOfTwo) String() string { return strconv.Itoa(c.value) }

// Masking is a power-of-two capacity stored as its bitmask. The zero value
// is a valid capacity of one.
type Masking struct {
	mask int
}

// NewMasking validates n as a power of two and keeps n-1.
func NewMasking(n int) (Masking, error) {
	if !IsPowerOfTwo(n) {
		return Masking{}, &PowerOfTwoCapacityError{Value: n}
	}
	return Masking{mask: n - 1}, nil
}

// Mask returns value-1. For any offset o >= 0, o & Mask() lies in [0, Get()).
func (c Masking) Mask() int { return c.mask }

// Get reconstructs the original power-of-two value.
func (c Masking) Get() int { return c.mask + 1 }

func (c Masking) String() string { return strconv.Itoa(c.mask + 1) }

// NonZero widens a power-of-two capacity; the conversion cannot fail.
func (c PowerOfTwo) NonZero() NonZero { return NonZero{value: c.value} }

// NonZero widens a masking capacity; the conversion cannot fail.
func (c Masking) NonZero() NonZero { return NonZero{value: c.mask + 1} }

// From validates n as a capacity of kind C.
func From[C Capacity](n int) (C, error) {
	var c C
	var err error
	switch p := any(&c).(type) {
	case *NonZero:
		*p, err = NewNonZero(n)
	case *PowerOfTwo:
		*p, err = NewPowerOfTwo(n)
	case *Masking:
		*p, err = NewMasking(n)
	}
	return c, err
}

// Must is From for sizes fixed when the program is written. Go cannot assert
// on generic constants at build time, so an invalid size panics on the first
// construction call instead of failing the build.
func Must[C Capacity](n int) C {
	c, err := From[C](n)
	if err != nil {
		panic(err)
	}
	return c
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
