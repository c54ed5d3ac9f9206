// Package config loads the demo configuration: the shapes to measure, the
// integral to approximate and how to log.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"oodesign/internal/geometry"
	"oodesign/internal/integrand"
	"oodesign/internal/quadrature"
)

// DefaultPath is where the demo runner looks for a config file.
var DefaultPath = filepath.Join(".oodesign", "config.yaml")

// Config holds all oodesign configuration.
type Config struct {
	Area        AreaConfig        `yaml:"area"`
	Integration IntegrationConfig `yaml:"integration"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AreaConfig lists the shapes whose areas are summed.
type AreaConfig struct {
	Shapes []ShapeConfig `yaml:"shapes"`
}

// ShapeConfig describes one shape. Size is the radius of a circle or the side
// of a square.
type ShapeConfig struct {
	Kind string  `yaml:"kind"`
	Size float64 `yaml:"size"`
}

// IntegrationConfig describes the definite integral to approximate.
type IntegrationConfig struct {
	// Integrand is a catalogue name (square, sin, ...) or "expr:<go expression in x>".
	Integrand  string   `yaml:"integrand"`
	Lower      float64  `yaml:"lower"`
	Upper      float64  `yaml:"upper"`
	Partitions int      `yaml:"partitions"`
	Strategies []string `yaml:"strategies"` // applied in order on one Integrator
	Sweep      []int    `yaml:"sweep"`      // partition counts for the comparison table
}

// DefaultConfig returns the configuration of the reference demo: a unit
// circle and a unit square, and x^2 over [0, 1] with ten subintervals.
func DefaultConfig() *Config {
	return &Config{
		Area: AreaConfig{
			Shapes: []ShapeConfig{
				{Kind: geometry.KindCircle, Size: 1.0},
				{Kind: geometry.KindSquare, Size: 1.0},
			},
		},
		Integration: IntegrationConfig{
			Integrand:  "square",
			Lower:      0,
			Upper:      1,
			Partitions: 10,
			Strategies: []string{quadrature.NameTrapezoidal, quadrature.NameSimpson},
			Sweep:      []int{2, 4, 10, 50},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Write marshals the configuration as YAML to w.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("OODESIGN_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if fn := os.Getenv("OODESIGN_INTEGRAND"); fn != "" {
		c.Integration.Integrand = fn
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for i, s := range c.Area.Shapes {
		if _, err := geometry.FromSpec(s.Kind, s.Size); err != nil {
			return fmt.Errorf("area.shapes[%d]: %w", i, err)
		}
	}

	in := c.Integration
	if in.Partitions <= 0 {
		return fmt.Errorf("integration.partitions must be > 0, got %d", in.Partitions)
	}
	for i, n := range in.Sweep {
		if n <= 0 {
			return fmt.Errorf("integration.sweep[%d] must be > 0, got %d", i, n)
		}
	}
	if len(in.Strategies) == 0 {
		return fmt.Errorf("integration.strategies must name at least one of %v", quadrature.Names())
	}
	if _, err := quadrature.LookupAll(in.Strategies); err != nil {
		return fmt.Errorf("integration.strategies: %w", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(in.Integrand), integrand.ExprPrefix) {
		if _, err := integrand.Lookup(in.Integrand); err != nil {
			return fmt.Errorf("integration.integrand: %w", err)
		}
	}

	return c.Logging.Validate()
}

// Shapes builds the configured shapes.
func (c *Config) Shapes() ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(c.Area.Shapes))
	for i, s := range c.Area.Shapes {
		shape, err := geometry.FromSpec(s.Kind, s.Size)
		if err != nil {
			return nil, fmt.Errorf("area.shapes[%d]: %w", i, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}
