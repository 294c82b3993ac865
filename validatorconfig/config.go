// Package validatorconfig holds the engine's tunable constants
// (spec.md §6) as overridable configuration, loadable from YAML the same
// way the teacher's config.ValidatorConfig loads rule overrides.
package validatorconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/subway-topology-validator/logging"
)

// Config holds the tunables spec.md §6 names as constants.
type Config struct {
	MaxDistanceNearby       float64 `yaml:"maxDistanceNearby"`
	AllowedStationsMismatch float64 `yaml:"allowedStationsMismatch"`
	AllowedTransfersMismatch float64 `yaml:"allowedTransfersMismatch"`

	// CountryFilter, if non-empty, restricts extraction to cities whose
	// Expectations.Country matches (cross-cutting CLI convenience, not
	// part of the core algorithm).
	CountryFilter string `yaml:"-"`

	Logger *logging.Logger `yaml:"-"`
}

// Default returns a Config with spec.md §6's exact default values.
func Default() *Config {
	return &Config{
		MaxDistanceNearby:        150,
		AllowedStationsMismatch:  0.02,
		AllowedTransfersMismatch: 0.07,
		Logger:                   logging.NewDefault(),
	}
}

// Option configures a Config.
type Option func(*Config)

// WithCountryFilter restricts extraction to one country.
func WithCountryFilter(country string) Option {
	return func(c *Config) { c.CountryFilter = country }
}

// WithLogger sets the logger the engine reports progress through.
func WithLogger(l *logging.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMaxDistanceNearby overrides the implicit StopArea proximity radius.
func WithMaxDistanceNearby(meters float64) Option {
	return func(c *Config) { c.MaxDistanceNearby = meters }
}

// New builds a Config starting from the spec defaults, applying options.
func New(opts ...Option) *Config {
	c := Default()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads tolerance overrides from a YAML file, starting from the spec
// defaults for any field the file omits.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if c.Logger == nil {
		c.Logger = logging.NewDefault()
	}
	return c, nil
}
