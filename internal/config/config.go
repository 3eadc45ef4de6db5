// Package config loads the settings of the palindrome HTTP service.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
)

// Config holds the service settings.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	CheckTimeout   time.Duration
	MaxRequestSize int
	Normalizer     string
	WarmUp         bool
	LogFile        string
	JSONLogs       bool
}

// fileConfig mirrors Config as it appears in TOML. Pointers tell unset keys
// apart from zero values; durations are strings such as "30s".
type fileConfig struct {
	Port           *int    `toml:"port"`
	ReadTimeout    *string `toml:"read_timeout"`
	WriteTimeout   *string `toml:"write_timeout"`
	CheckTimeout   *string `toml:"check_timeout"`
	MaxRequestSize *int    `toml:"max_request_size"`
	Normalizer     *string `toml:"normalizer"`
	WarmUp         *bool   `toml:"warm_up"`
	LogFile        *string `toml:"log_file"`
	JSONLogs       *bool   `toml:"json_logs"`
}

// Default returns the built-in service settings.
func Default() Config {
	return Config{
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		CheckTimeout:   5 * time.Second,
		MaxRequestSize: 1024 * 1024, // 1MB
		Normalizer:     normalizer.UnicodeNormalizerType.String(),
		WarmUp:         false,
		JSONLogs:       true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.CheckTimeout <= 0 {
		return errors.New("timeouts must be greater than 0")
	}
	if c.MaxRequestSize <= 0 {
		return errors.New("max_request_size must be greater than 0")
	}
	if _, err := normalizer.ParseNormalizerType(c.Normalizer); err != nil {
		return err
	}
	return nil
}

// Load returns the defaults overlaid with the TOML file at path.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse overlays the keys present in data onto cfg.
func Parse(data []byte, cfg *Config) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.MaxRequestSize != nil {
		cfg.MaxRequestSize = *fc.MaxRequestSize
	}
	if fc.Normalizer != nil {
		cfg.Normalizer = *fc.Normalizer
	}
	if fc.WarmUp != nil {
		cfg.WarmUp = *fc.WarmUp
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.JSONLogs != nil {
		cfg.JSONLogs = *fc.JSONLogs
	}

	durations := []struct {
		key string
		src *string
		dst *time.Duration
	}{
		{"read_timeout", fc.ReadTimeout, &cfg.ReadTimeout},
		{"write_timeout", fc.WriteTimeout, &cfg.WriteTimeout},
		{"check_timeout", fc.CheckTimeout, &cfg.CheckTimeout},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		v, err := time.ParseDuration(*d.src)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}

	return nil
}
