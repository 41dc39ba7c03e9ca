// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared by capacity, storage and ring packages.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidCapacity        = fmt.Errorf("invalid capacity")
	ErrCapacityExceedsStorage = fmt.Errorf("capacity exceeds storage capacity")
	ErrUnknownKind            = fmt.Errorf("unknown ring kind")
	ErrUnknownBackend         = fmt.Errorf("unknown storage backend")
	ErrStorageClosed          = fmt.Errorf("storage is closed")
	ErrUnsupportedBackend     = fmt.Errorf("backend not supported for element type")
)
