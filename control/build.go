// control/build.go
// Author: momentics <momentics@gmail.com>
//
// Engine and backend selection from a validated Config.

package control

import (
	"fmt"
	"io"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
	"github.com/momentics/hioload-ring/ring"
	"github.com/momentics/hioload-ring/storage"
)

// Build constructs a heap-backed ring for any element type. The mapped
// backend needs BuildScalar.
func Build[T any](cfg Config) (api.Ring[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend != BackendHeap {
		return nil, fmt.Errorf("%w: %q", api.ErrUnsupportedBackend, cfg.Backend)
	}
	return buildHeap[T](cfg)
}

func buildHeap[T any](cfg Config) (api.Ring[T], error) {
	switch cfg.Kind {
	case KindMasking:
		r, err := ring.NewMaskingHeap[T](cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindSparse:
		r, err := ring.NewSparseMaskingHeap[T](cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindSubtracting:
		r, err := ring.NewSubtractingHeap[T](cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", api.ErrUnknownKind, cfg.Kind)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// BuildScalar constructs a ring for a pointer-free element type on either
// backend. The returned Closer releases mapped storage; for the heap backend
// it does nothing. The ring must not be used after Close.
func BuildScalar[T storage.Scalar](cfg Config) (api.Ring[T], io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.Backend == BackendHeap {
		r, err := buildHeap[T](cfg)
		if err != nil {
			return nil, nil, err
		}
		return r, nopCloser{}, nil
	}

	n := cfg.Capacity
	switch cfg.Kind {
	case KindMasking:
		s := storage.NewMapped[T](capacity.Must[capacity.Masking](n))
		return ring.NewMasking[T](s), s, nil
	case KindSparse:
		s := storage.NewMapped[T](capacity.Must[capacity.Masking](capacity.NextPowerOfTwo(n)))
		return ring.NewSparseMasking[T](capacity.Must[capacity.NonZero](n), s), s, nil
	case KindSubtracting:
		s := storage.NewMapped[T](capacity.Must[capacity.NonZero](n))
		return ring.NewSubtracting[T](s), s, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", api.ErrUnknownKind, cfg.Kind)
}
