// File: cmd/ringbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringbench drives a ring engine with a wraparound workload and reports
// per-operation latency percentiles.

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
