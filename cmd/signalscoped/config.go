package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the daemon configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Limits  LimitsConfig  `yaml:"limits"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	Listen string `yaml:"listen"` // host:port, default :8517
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	MaxBits     int `yaml:"max_bits"`      // longest accepted bit string, default 4096
	MaxBodySize int `yaml:"max_body_size"` // request body cap in bytes, default 64 KiB
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server:  ServerConfig{Listen: ":8517"},
		Limits:  LimitsConfig{MaxBits: 4096, MaxBodySize: 64 * 1024},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8517"
	}
	if cfg.Limits.MaxBits <= 0 {
		cfg.Limits.MaxBits = 4096
	}
	if cfg.Limits.MaxBodySize <= 0 {
		cfg.Limits.MaxBodySize = 64 * 1024
	}

	return cfg, nil
}
