//go:build !linux
// +build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// RegisterPlatformProbes sets platform debug values.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return os.Getpagesize()
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
}
