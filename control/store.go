// control/store.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with reload propagation.

package control

import "sync"

// ConfigStore holds the current Config and notifies listeners on change.
// Listeners typically build a replacement ring; live rings are never
// resized in place.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{config: cfg}
}

// Get returns the current config.
func (cs *ConfigStore) Get() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// OnReload registers a listener called with each accepted config.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// Set validates and stores cfg, then dispatches listeners asynchronously.
// An invalid cfg is rejected and the current config is kept.
func (cs *ConfigStore) Set(cfg Config) error {
	listeners, err := cs.swap(cfg)
	if err != nil {
		return err
	}
	for _, fn := range listeners {
		go fn(cfg)
	}
	return nil
}

// SetSync is Set with listeners invoked on the calling goroutine (for test determinism).
func (cs *ConfigStore) SetSync(cfg Config) error {
	listeners, err := cs.swap(cfg)
	if err != nil {
		return err
	}
	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

func (cs *ConfigStore) swap(cfg Config) ([]func(Config), error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.config = cfg
	out := make([]func(Config), len(cs.listeners))
	copy(out, cs.listeners)
	return out, nil
}
