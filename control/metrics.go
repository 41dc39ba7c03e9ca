// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Per-ring counter registry. Instrumented rings publish Stats under their
// name; exporters read flattened snapshots.

package control

import (
	"sort"
	"sync"
	"time"
)

// Stats is a snapshot of an instrumented ring's counters.
type Stats struct {
	Enqueued int64
	Evicted  int64
	Dequeued int64
}

// EvictionRatio is the share of enqueues that displaced an element.
func (s Stats) EvictionRatio() float64 {
	if s.Enqueued == 0 {
		return 0
	}
	return float64(s.Evicted) / float64(s.Enqueued)
}

// MetricsRegistry collects the latest Stats for each named ring.
type MetricsRegistry struct {
	mu      sync.RWMutex
	rings   map[string]Stats
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		rings: make(map[string]Stats),
	}
}

// Record stores st as the current counters of ring name.
func (mr *MetricsRegistry) Record(name string, st Stats) {
	mr.mu.Lock()
	mr.rings[name] = st
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Ring returns the last recorded counters of ring name.
func (mr *MetricsRegistry) Ring(name string) (Stats, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	st, ok := mr.rings[name]
	return st, ok
}

// Names lists recorded rings in sorted order.
func (mr *MetricsRegistry) Names() []string {
	mr.mu.RLock()
	names := make([]string, 0, len(mr.rings))
	for name := range mr.rings {
		names = append(names, name)
	}
	mr.mu.RUnlock()
	sort.Strings(names)
	return names
}

// GetSnapshot flattens every ring's counters to "<ring>.<counter>" keys.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, 3*len(mr.rings))
	for name, st := range mr.rings {
		out[name+".enqueued"] = st.Enqueued
		out[name+".evicted"] = st.Evicted
		out[name+".dequeued"] = st.Dequeued
	}
	return out
}

// Updated returns the time of the last Record.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
