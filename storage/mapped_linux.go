//go:build linux
// +build linux

// File: storage/mapped_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux mapping via mmap. Blocks of at least one huge page try MAP_HUGETLB
// first and fall back to normal pages.

package storage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const hugePageSize = 2 << 20

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}

func mapRegion(size int) []byte {
	const prot = unix.PROT_READ | unix.PROT_WRITE
	const flags = unix.MAP_ANONYMOUS | unix.MAP_PRIVATE

	if size >= hugePageSize {
		length := roundUp(size, hugePageSize)
		if data, err := unix.Mmap(-1, 0, length, prot, flags|unix.MAP_HUGETLB); err == nil {
			return data
		}
	}
	length := roundUp(size, unix.Getpagesize())
	data, err := unix.Mmap(-1, 0, length, prot, flags)
	if err != nil {
		panic(fmt.Sprintf("storage: mmap of %d bytes failed: %v", length, err))
	}
	return data
}

func unmapRegion(region []byte) error {
	if region == nil {
		return nil
	}
	return unix.Munmap(region)
}
