// Package config loads and validates runtime settings for the mazesolver
// CLI: the move-budget ladder, logging, and search concurrency.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrBadTiers is returned when the budget ladder does not increase strictly.
var ErrBadTiers = errors.New("config: move budget tiers must increase strictly")

// validate is the shared validator instance for config structs.
var validate = validator.New()

// Config holds runtime settings for the mazesolver CLI.
type Config struct {
	// Tiers are the move budgets tried in ascending order until one
	// yields a solution. Each tier reruns the full enumeration.
	Tiers []int `yaml:"tiers" validate:"required,min=1,dive,min=0"`

	// LogLevel is one of: debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat is one of: text, json.
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`

	// Workers bounds concurrent start/exit pair searches; 1 is sequential.
	Workers int `yaml:"workers" validate:"min=1"`
}

// Default returns the stock configuration: the 38/150/200 budget ladder,
// text logs at info level, colored output, sequential search.
func Default() Config {
	return Config{
		Tiers:     []int{38, 150, 200},
		LogLevel:  "info",
		LogFormat: "text",
		NoColor:   false,
		Workers:   1,
	}
}

// Load reads a YAML config from path and validates it. An empty path yields
// Default() untouched. The file is unmarshalled over a Default() value, so
// omitted keys inherit their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints, then the ladder shape: each tier must
// exceed the previous one, or the retry loop would re-run a budget that
// cannot find anything new.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for i := 1; i < len(c.Tiers); i++ {
		if c.Tiers[i] <= c.Tiers[i-1] {
			return fmt.Errorf("%w: %d follows %d", ErrBadTiers, c.Tiers[i], c.Tiers[i-1])
		}
	}

	return nil
}
