// control/instrument.go
// Author: momentics <momentics@gmail.com>
//
// Counting wrapper around any api.Ring.

package control

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Instrumented[any])(nil)

// Instrumented forwards to a ring and counts traffic. Counters are atomic so
// Publish may run on a metrics goroutine; ring methods still belong to a
// single owner.
type Instrumented[T any] struct {
	api.Ring[T]
	name     string
	registry *MetricsRegistry
	log      *zap.Logger

	enqueued atomic.Int64
	evicted  atomic.Int64
	dequeued atomic.Int64
}

// Instrument wraps r. A nil registry or logger disables that output.
func Instrument[T any](name string, r api.Ring[T], registry *MetricsRegistry, log *zap.Logger) *Instrumented[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented[T]{
		Ring:     r,
		name:     name,
		registry: registry,
		log:      log.With(zap.String("ring", name)),
	}
}

func (in *Instrumented[T]) Enqueue(item T) (T, bool) {
	old, evicted := in.Ring.Enqueue(item)
	in.enqueued.Inc()
	if evicted {
		n := in.evicted.Inc()
		if ce := in.log.Check(zap.DebugLevel, "ring full, evicted oldest element"); ce != nil {
			ce.Write(zap.Int64("evictions", n), zap.Int("capacity", in.Ring.Cap()))
		}
	}
	return old, evicted
}

func (in *Instrumented[T]) Dequeue() (T, bool) {
	item, ok := in.Ring.Dequeue()
	if ok {
		in.dequeued.Inc()
	}
	return item, ok
}

// Stats returns the current counters.
func (in *Instrumented[T]) Stats() Stats {
	return Stats{
		Enqueued: in.enqueued.Load(),
		Evicted:  in.evicted.Load(),
		Dequeued: in.dequeued.Load(),
	}
}

// Publish records the counters in the registry under the ring's name.
func (in *Instrumented[T]) Publish() {
	if in.registry != nil {
		in.registry.Record(in.name, in.Stats())
	}
}
