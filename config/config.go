// SPDX-License-Identifier: MIT

// Package config holds the typed run configuration of gaeval.
//
// A configuration file is YAML. Environment variables in the file are
// expanded before parsing, and unknown keys are rejected so that a typo never
// silently falls back to a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gaeval/dataset"
	"github.com/katalvlaran/gaeval/linkpred"
	"github.com/katalvlaran/gaeval/sampler"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Sampler SamplerConfig `yaml:"sampler"`
	Eval    EvalConfig    `yaml:"eval"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the raw blocks of one dataset.
type DatasetConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
	// IsolatedTestNodes zero-fills test nodes missing from the tx block.
	IsolatedTestNodes bool `yaml:"isolated_test_nodes"`
}

// SamplerConfig seeds every random draw of a run.
type SamplerConfig struct {
	Seed uint64 `yaml:"seed"`
}

// EvalConfig drives pair selection and scoring.
type EvalConfig struct {
	Threshold  float64 `yaml:"threshold"`
	PairPolicy string  `yaml:"pair_policy"` // "require-equal" | "own-length"
	// TestFraction of the positive edges is held out as evaluation pairs.
	TestFraction float64 `yaml:"test_fraction"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Dir: "data", Name: "cora"},
		Sampler: SamplerConfig{Seed: 1},
		Eval: EvalConfig{
			Threshold:    linkpred.DefaultThreshold,
			PairPolicy:   linkpred.DefaultPairPolicy.String(),
			TestFraction: 0.1,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("YAML error in '%s': %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Dataset.Name == "" {
		return fmt.Errorf("dataset.name is empty: %w", ErrInvalid)
	}
	if !(c.Eval.Threshold > 0 && c.Eval.Threshold < 1) {
		return fmt.Errorf("eval.threshold %v not in (0,1): %w", c.Eval.Threshold, ErrInvalid)
	}
	if !(c.Eval.TestFraction > 0 && c.Eval.TestFraction <= 1) {
		return fmt.Errorf("eval.test_fraction %v not in (0,1]: %w", c.Eval.TestFraction, ErrInvalid)
	}
	if _, err := linkpred.ParsePairPolicy(c.Eval.PairPolicy); err != nil {
		return fmt.Errorf("eval.pair_policy: %w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// DatasetOptions translates the dataset section into dataset options.
func (c *Config) DatasetOptions() []dataset.Option {
	return []dataset.Option{dataset.WithIsolated(c.Dataset.IsolatedTestNodes)}
}

// SamplerOptions seeds a sampler with one stream of the configured seed.
func (c *Config) SamplerOptions(stream uint64) []sampler.Option {
	return []sampler.Option{sampler.WithStream(c.Sampler.Seed, stream)}
}

// EvalOptions translates the eval section into linkpred options.
// Call Validate first; invalid values panic inside the option constructors.
func (c *Config) EvalOptions() []linkpred.Option {
	policy, _ := linkpred.ParsePairPolicy(c.Eval.PairPolicy)
	return []linkpred.Option{
		linkpred.WithThreshold(c.Eval.Threshold),
		linkpred.WithPairPolicy(policy),
	}
}
