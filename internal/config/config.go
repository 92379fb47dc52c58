// SPDX-License-Identifier: MIT

// Package config holds the YAML settings of the matcalc tool.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	DefaultPrecision = 6
	DefaultAlgorithm = "cofactor"
	MaxPrecision     = 17
)

// Algorithm names accepted in the config file and on the command line.
const (
	AlgorithmCofactor = "cofactor"
	AlgorithmLU       = "lu"
)

var (
	// ErrInvalidConfig is returned by Validate for out-of-range settings.
	ErrInvalidConfig = errors.New("config: invalid value")
)

type Config struct {
	Precision   int     `yaml:"precision"`
	Algorithm   string  `yaml:"algorithm"`
	Epsilon     float64 `yaml:"epsilon"`
	SingularTol float64 `yaml:"singular_tol"`
	Verbose     bool    `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision:   DefaultPrecision,
		Algorithm:   DefaultAlgorithm,
		Epsilon:     matrix.DefaultEpsilon,
		SingularTol: matrix.DefaultSingularTol,
	}
}

// Load reads path over the defaults; keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the matrix options would panic on.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d (want 0..%d): %w", c.Precision, MaxPrecision, ErrInvalidConfig)
	}
	if _, err := ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if !validTolerance(c.Epsilon) {
		return fmt.Errorf("epsilon %g: %w", c.Epsilon, ErrInvalidConfig)
	}
	if !validTolerance(c.SingularTol) {
		return fmt.Errorf("singular_tol %g: %w", c.SingularTol, ErrInvalidConfig)
	}
	return nil
}

// validTolerance reports x is finite and non-negative (NaN fails the >= test).
func validTolerance(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

// ParseAlgorithm maps an algorithm name to its matrix.DetAlgorithm.
func ParseAlgorithm(name string) (matrix.DetAlgorithm, error) {
	switch name {
	case AlgorithmCofactor, "":
		return matrix.DetCofactor, nil
	case AlgorithmLU:
		return matrix.DetLU, nil
	default:
		return 0, fmt.Errorf("algorithm %q (want %s|%s): %w", name, AlgorithmCofactor, AlgorithmLU, ErrInvalidConfig)
	}
}

// MatrixOptions translates the config into matrix options.
// Call Validate first; invalid values make the option constructors panic.
func (c *Config) MatrixOptions() []matrix.Option {
	alg, err := ParseAlgorithm(c.Algorithm)
	if err != nil {
		alg = matrix.DefaultDetAlgorithm
	}
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithSingularTol(c.SingularTol),
		matrix.WithDetAlgorithm(alg),
	}
}
