// Package config provides configuration loading for gobeam.
// It supports loading from YAML files, a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/logging"
	"github.com/alexiusacademia/gobeam/internal/materials"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contains all gobeam configuration settings.
type Config struct {
	// Beam holds the initial beam the simulator starts from and resets to.
	Beam BeamConfig `json:"beam" yaml:"beam"`

	// Display contains rendering constants.
	Display DisplayConfig `json:"display" yaml:"display"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// BeamConfig describes the initial beam.
type BeamConfig struct {
	Length    float64 `json:"length" yaml:"length"`         // m
	Height    float64 `json:"height" yaml:"height"`         // m
	Base      float64 `json:"base" yaml:"base"`             // m
	Load      float64 `json:"load" yaml:"load"`             // N
	LoadRatio float64 `json:"load_ratio" yaml:"load_ratio"` // Px/L in [0, 1]
	Material  string  `json:"material" yaml:"material"`

	// Samples is the number of stations the beam is sampled at (n >= 2).
	Samples int `json:"samples" yaml:"samples"`
}

// DisplayConfig holds presentation constants.
type DisplayConfig struct {
	// Magnification multiplies deflections before they are rendered.
	// It is a display scale only and never enters the stress or deflection results.
	Magnification float64 `json:"magnification" yaml:"magnification"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the reference beam.
func Default() *Config {
	return &Config{
		Beam: BeamConfig{
			Length:    beam.DefaultLength,
			Height:    beam.DefaultHeight,
			Base:      beam.DefaultBase,
			Load:      beam.DefaultLoad,
			LoadRatio: beam.DefaultLoadRatio,
			Material:  materials.Default,
			Samples:   50,
		},
		Display: DisplayConfig{
			Magnification: 0.1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration in order: defaults -> YAML file at path (if not
// empty) -> .env file in the working directory -> environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	b := c.Beam
	if b.Length <= 0 || b.Height <= 0 || b.Base <= 0 {
		return fmt.Errorf("beam length, height and base must be positive, got L=%g h=%g b=%g", b.Length, b.Height, b.Base)
	}
	if math.IsNaN(b.Load) || math.IsInf(b.Load, 0) {
		return fmt.Errorf("load must be finite, got %g", b.Load)
	}
	if b.LoadRatio < 0 || b.LoadRatio > 1 {
		return fmt.Errorf("load_ratio must be between 0 and 1, got %g", b.LoadRatio)
	}
	if _, err := materials.Lookup(b.Material); err != nil {
		return fmt.Errorf("material: %w", err)
	}
	if b.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", b.Samples)
	}

	if math.IsNaN(c.Display.Magnification) || math.IsInf(c.Display.Magnification, 0) {
		return fmt.Errorf("magnification must be finite, got %g", c.Display.Magnification)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// NewBeam builds beam parameters from the configured initial beam.
func (c *Config) NewBeam() (*beam.Parameters, error) {
	b := c.Beam
	p, err := beam.New(b.Samples)
	if err != nil {
		return nil, err
	}
	if err := p.SetLength(b.Length); err != nil {
		return nil, err
	}
	if err := p.SetHeight(b.Height); err != nil {
		return nil, err
	}
	if err := p.SetBase(b.Base); err != nil {
		return nil, err
	}
	if err := p.SetLoad(b.Load); err != nil {
		return nil, err
	}
	if _, err := p.SetLoadRatio(b.LoadRatio); err != nil {
		return nil, err
	}
	if err := p.SetMaterial(b.Material); err != nil {
		return nil, err
	}
	return p, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	floats := map[string]*float64{
		"GOBEAM_LENGTH":        &config.Beam.Length,
		"GOBEAM_HEIGHT":        &config.Beam.Height,
		"GOBEAM_BASE":          &config.Beam.Base,
		"GOBEAM_LOAD":          &config.Beam.Load,
		"GOBEAM_LOAD_RATIO":    &config.Beam.LoadRatio,
		"GOBEAM_MAGNIFICATION": &config.Display.Magnification,
	}
	for key, dst := range floats {
		if v := os.Getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	if v := os.Getenv("GOBEAM_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Beam.Samples = n
		}
	}

	if v := os.Getenv("GOBEAM_MATERIAL"); v != "" {
		config.Beam.Material = v
	}

	if v := os.Getenv("GOBEAM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
