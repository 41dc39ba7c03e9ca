// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry for dumping ring and platform state.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// RingState is what a ring probe reports.
type RingState struct {
	Len  int  `json:"len"`
	Cap  int  `json:"cap"`
	Full bool `json:"full"`
}

// StateOf samples r.
func StateOf[T any](r api.Ring[T]) RingState {
	return RingState{Len: r.Len(), Cap: r.Cap(), Full: r.IsFull()}
}

// DebugProbes holds named probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// RegisterProbe inserts or replaces a named hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// Unregister removes a hook, e.g. when its ring is replaced after a reload.
func (dp *DebugProbes) Unregister(name string) {
	dp.mu.Lock()
	delete(dp.probes, name)
	dp.mu.Unlock()
}

// DumpState runs every probe.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for name, fn := range dp.probes {
		out[name] = fn()
	}
	return out
}

// RegisterRingProbe exposes StateOf(r) under name. The probe reads ring
// state, so DumpState must run on the ring's owning goroutine.
func RegisterRingProbe[T any](dp *DebugProbes, name string, r api.Ring[T]) {
	dp.RegisterProbe(name, func() any { return StateOf(r) })
}
