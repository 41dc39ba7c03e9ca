//go:build !linux
// +build !linux

// File: storage/mapped_other.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without the mmap path: a plain Go byte slice.

package storage

func mapRegion(size int) []byte {
	return make([]byte, size)
}

func unmapRegion([]byte) error { return nil }
