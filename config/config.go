// Package config provides process configuration for the discovery engine.
// Values are layered: built-in defaults, then an optional YAML file, then
// DISCOVERY_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains all runtime options for the serving process.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SuggestionLimit caps autocomplete results when the request does not
	// supply its own limit.
	SuggestionLimit int `koanf:"suggestion_limit"`

	// RebuildWorkers bounds concurrent background rebuild jobs.
	RebuildWorkers int `koanf:"rebuild_workers"`

	// MaxRequestBodyBytes limits request body size to prevent memory
	// exhaustion.
	MaxRequestBodyBytes int64 `koanf:"max_request_body_bytes"`
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Addr:                ":8080",
		SuggestionLimit:     4,
		RebuildWorkers:      2,
		MaxRequestBodyBytes: 1 << 20, // 1 MiB
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Order of precedence (low -> high):
//  1. defaults (Default())
//  2. YAML file at path, if path is non-empty
//  3. env vars with prefix DISCOVERY_ (e.g. DISCOVERY_ADDR)
func Load(path string) (Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Map env keys like DISCOVERY_SUGGESTION_LIMIT -> suggestion_limit.
	envProvider := env.Provider("DISCOVERY_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "discovery_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnvPath loads from the file named by DISCOVERY_CONFIG, if set.
func LoadFromEnvPath() (Config, error) {
	return Load(os.Getenv("DISCOVERY_CONFIG"))
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr cannot be empty")
	}
	if c.SuggestionLimit <= 0 {
		return fmt.Errorf("suggestion_limit must be positive, got %d", c.SuggestionLimit)
	}
	if c.RebuildWorkers <= 0 {
		return fmt.Errorf("rebuild_workers must be positive, got %d", c.RebuildWorkers)
	}
	if c.MaxRequestBodyBytes <= 0 {
		return fmt.Errorf("max_request_body_bytes must be positive, got %d", c.MaxRequestBodyBytes)
	}
	return nil
}
