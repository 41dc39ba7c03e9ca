// File: cmd/ringbench/workload.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/elastic/go-hdrhistogram"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

// batch is the number of operations timed together; a single enqueue is
// shorter than the clock resolution.
const batch = 64

type result struct {
	ops       int
	elapsed   time.Duration
	histogram *hdrhistogram.Histogram
	checksum  uint64
}

// runWorkload enqueues 1..ops, dequeuing every dequeueEvery enqueues, then
// drains the ring. checksum sums every value that left the ring, evicted or
// dequeued, so it always equals ops*(ops+1)/2.
func runWorkload(r api.Ring[uint64], ops, dequeueEvery int) (result, error) {
	if dequeueEvery < 0 {
		return result{}, fmt.Errorf("--dequeue-every must not be negative, got %d", dequeueEvery)
	}
	// Per-op latency in nanoseconds, up to 10ms, 3 significant figures.
	h := hdrhistogram.New(1, int64(10*time.Millisecond), 3)
	var sum uint64

	start := time.Now()
	for done := 0; done < ops; {
		n := batch
		if ops-done < n {
			n = ops - done
		}
		t0 := time.Now()
		for i := 0; i < n; i++ {
			v := uint64(done + i + 1)
			if old, evicted := r.Enqueue(v); evicted {
				sum += old
			}
			if dequeueEvery > 0 && (done+i+1)%dequeueEvery == 0 {
				if old, ok := r.Dequeue(); ok {
					sum += old
				}
			}
		}
		perOp := time.Since(t0).Nanoseconds() / int64(n)
		if perOp < 1 {
			perOp = 1
		}
		_ = h.RecordValue(perOp)
		done += n
	}
	for {
		v, ok := r.Dequeue()
		if !ok {
			break
		}
		sum += v
	}
	return result{ops: ops, elapsed: time.Since(start), histogram: h, checksum: sum}, nil
}

func report(out io.Writer, cfg control.Config, res result, st control.Stats) {
	h := res.histogram
	fmt.Fprintf(out, "ring %q: %s, capacity %s (%s of %d-byte slots), backend %s\n",
		cfg.Name, cfg.Kind, humanize.Comma(int64(cfg.Capacity)),
		humanize.IBytes(uint64(cfg.Capacity)*8), 8, cfg.Backend)
	fmt.Fprintf(out, "ops:       %s in %s\n", humanize.Comma(int64(res.ops)), res.elapsed)
	fmt.Fprintf(out, "evicted:   %s\n", humanize.Comma(st.Evicted))
	fmt.Fprintf(out, "dequeued:  %s\n", humanize.Comma(st.Dequeued))
	fmt.Fprintf(out, "latency:   mean %.1fns p50 %dns p99 %dns p99.9 %dns max %dns\n",
		h.Mean(), h.ValueAtQuantile(50), h.ValueAtQuantile(99), h.ValueAtQuantile(99.9), h.Max())
	fmt.Fprintf(out, "checksum:  %d\n", res.checksum)
}
