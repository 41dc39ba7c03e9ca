// Package storage
// Author: momentics <momentics@gmail.com>
//
// Backing storage for ring buffers, independent of the wraparound strategy.
//
// Backends:
//   - Inline: a fixed-size array held by value; no allocation of its own.
//   - Heap: one contiguous block allocated at construction, never resized.
//   - Mapped: an anonymous memory mapping for pointer-free element types.
//   - Ref/FullRef: borrowed forwarders over storage owned elsewhere.
//
// A storage instance must back at most one live ring buffer at a time.
// None of the types here are safe for concurrent use.
package storage
