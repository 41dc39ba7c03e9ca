// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for capacity construction.

package capacity

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// NonZeroCapacityError reports a capacity that must be non-zero.
type NonZeroCapacityError struct {
	Value int
}

func (e *NonZeroCapacityError) Error() string {
	return fmt.Sprintf("capacity must be non-zero, got %d", e.Value)
}

// Is matches api.ErrInvalidCapacity.
func (e *NonZeroCapacityError) Is(target error) bool {
	return target == api.ErrInvalidCapacity
}

// PowerOfTwoCapacityError reports a capacity that must be a power of two.
type PowerOfTwoCapacityError struct {
	Value int
}

func (e *PowerOfTwoCapacityError) Error() string {
	return fmt.Sprintf("capacity must be a power of two, got %d", e.Value)
}

// Is matches api.ErrInvalidCapacity.
func (e *PowerOfTwoCapacityError) Is(target error) bool {
	return target == api.ErrInvalidCapacity
}
