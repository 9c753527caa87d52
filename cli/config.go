package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	envConfig       = "CALENDAR_CONFIG"
	envLogLevel     = "CALENDAR_LOG_LEVEL"
	envMetrics      = "CALENDAR_METRICS"
	envCatalogLimit = "CALENDAR_CATALOG_LIMIT"
)

// Config controls the calendar command line tool.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	Metrics      bool   `yaml:"metrics"`
	CatalogLimit int    `yaml:"catalog_limit"`
}

// DefaultConfig is used when no file and no environment overrides are given.
func DefaultConfig() Config {
	return Config{
		LogLevel:     "warn",
		Metrics:      false,
		CatalogLimit: 53,
	}
}

// LoadConfig starts from DefaultConfig, applies the yaml file at path (or
// $CALENDAR_CONFIG when path is empty), then environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envMetrics); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envMetrics, err)
		}
		cfg.Metrics = b
	}
	if v := os.Getenv(envCatalogLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envCatalogLimit, err)
		}
		cfg.CatalogLimit = n
	}

	if cfg.CatalogLimit <= 0 {
		return cfg, errors.New("config: catalog_limit must be positive")
	}
	return cfg, nil
}
