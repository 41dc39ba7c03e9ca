// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, construction, metrics and debug introspection around the
// ring engines.
//
// Provides:
//   - Config with YAML loading and aggregated validation
//   - Build/BuildScalar: engine and backend selection from a Config
//   - ConfigStore: snapshot reads and reload listeners; reconfiguration
//     means building a new ring, never mutating a live one
//   - Instrument: counting wrapper for any api.Ring with zap logging
//   - MetricsRegistry and DebugProbes for state export
//
// The engines themselves stay lock-free and log-free; everything here is
// optional plumbing for host applications.
package control
