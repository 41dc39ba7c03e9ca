// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Ring configuration: kind, capacity and storage backend.

package control

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
)

// Kind selects the wraparound strategy.
type Kind string

const (
	KindMasking     Kind = "masking"
	KindSparse      Kind = "sparse"
	KindSubtracting Kind = "subtracting"
)

// Backend selects where elements live.
type Backend string

const (
	BackendHeap   Backend = "heap"
	BackendMapped Backend = "mapped"
)

// Config describes one ring buffer.
type Config struct {
	Name     string  `yaml:"name"`
	Kind     Kind    `yaml:"kind"`
	Capacity int     `yaml:"capacity"`
	Backend  Backend `yaml:"backend"`
}

// DefaultConfig returns a heap-backed subtracting ring of 1024 slots.
func DefaultConfig() Config {
	return Config{
		Name:     "default",
		Kind:     KindSubtracting,
		Capacity: 1024,
		Backend:  BackendHeap,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	switch c.Kind {
	case KindMasking:
		if _, err := capacity.NewMasking(c.Capacity); err != nil {
			result = multierror.Append(result, err)
		}
	case KindSparse, KindSubtracting:
		if _, err := capacity.NewNonZero(c.Capacity); err != nil {
			result = multierror.Append(result, err)
		}
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", api.ErrUnknownKind, c.Kind))
	}

	switch c.Backend {
	case BackendHeap, BackendMapped:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", api.ErrUnknownBackend, c.Backend))
	}

	return result.ErrorOrNil()
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode ring config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "ring config %q", cfg.Name)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read ring config %s", path)
	}
	return ParseConfig(data)
}
