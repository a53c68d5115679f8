// Package config loads tool settings from a YAML file.
//
// The file mirrors the dotted keys in keys.go:
//
//	engine:
//	  max_elements: 16
//	  parallelism: 4
//	  policy: collect-all
//	log:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/on-the-ground/effect_ive_filter/internal/logging"
	"github.com/on-the-ground/effect_ive_filter/monad/validation"
	"github.com/on-the-ground/effect_ive_filter/powerset"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Engine struct {
	MaxElements int    `yaml:"max_elements"`
	Parallelism int    `yaml:"parallelism"`
	Policy      string `yaml:"policy"`
}

type Log struct {
	Level logging.LogLevel `yaml:"level"`
}

type Config struct {
	Engine Engine `yaml:"engine"`
	Log    Log    `yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Engine: Engine{
			MaxElements: powerset.DefaultMaxElements,
			Parallelism: 1,
			Policy:      validation.ShortCircuit.String(),
		},
		Log: Log{Level: logging.LogInfo},
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and names the offending key.
func (c Config) Validate() error {
	if c.Engine.MaxElements <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, ConfigEngineMaxElements, c.Engine.MaxElements)
	}
	if c.Engine.Parallelism <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, ConfigEngineParallelism, c.Engine.Parallelism)
	}
	if _, err := validation.ParsePolicy(c.Engine.Policy); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigEnginePolicy, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
	}
	return nil
}

// Policy returns the parsed validation policy.
func (c Config) Policy() validation.Policy {
	p, _ := validation.ParsePolicy(c.Engine.Policy)
	return p
}
