package syncbuffer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jonaspleyer/circ-buffer/errors"
	"github.com/jonaspleyer/circ-buffer/metric"
)

// Policy names accepted in configuration files.
const (
	PolicyDropOldest = "drop_oldest"
	PolicyDropNewest = "drop_newest"
	PolicyBlock      = "block"
)

// Config declares a buffer in configuration. It decodes from YAML or JSON:
//
//	capacity: 1000
//	policy: drop_oldest
//	name: udp-input
type Config struct {
	// Capacity is the fixed number of slots. Required, must be positive.
	Capacity int `json:"capacity" yaml:"capacity"`

	// Policy selects the overflow behavior: drop_oldest (default),
	// drop_newest, or block.
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`

	// Name labels this buffer in Prometheus metrics. Required only when a
	// metrics registry is passed to NewFromConfig.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, c.Capacity),
			"Config", "Validate", "capacity must be positive")
	}
	if _, err := ParsePolicy(c.Policy); err != nil {
		return errors.WrapInvalid(err, "Config", "Validate", "policy selection")
	}
	return nil
}

// ParsePolicy maps a configuration policy name to an OverflowPolicy. The
// empty string selects DropOldest.
func ParsePolicy(name string) (OverflowPolicy, error) {
	switch name {
	case "", PolicyDropOldest:
		return DropOldest, nil
	case PolicyDropNewest:
		return DropNewest, nil
	case PolicyBlock:
		return Block, nil
	default:
		return DropOldest, fmt.Errorf("%w: %q", errors.ErrInvalidPolicy, name)
	}
}

// ParseConfig decodes a YAML (or JSON, YAML being a superset) document into
// a validated Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(err, "Config", "ParseConfig", "decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a buffer from a validated configuration. A non-nil
// registry enables Prometheus export under cfg.Name. Additional options are
// applied after the configuration, so they can override it.
func NewFromConfig[T any](cfg Config, registry *metric.Registry, options ...Option[T]) (Buffer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Config", "NewFromConfig", "policy selection")
	}

	opts := []Option[T]{WithOverflowPolicy[T](policy)}
	if registry != nil {
		if cfg.Name == "" {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: name required for metrics", errors.ErrInvalidConfig),
				"Config", "NewFromConfig", "metrics labeling")
		}
		opts = append(opts, WithMetrics[T](registry, cfg.Name))
	}
	opts = append(opts, options...)

	return New[T](cfg.Capacity, opts...)
}
