// Package config loads the classifier settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/viant/knn/logging"
	"gopkg.in/yaml.v3"
)

// Config represents the complete classifier configuration.
type Config struct {
	// K is the default number of neighbors consulted for a prediction.
	K int `yaml:"k" json:"k"`

	// Workers bounds concurrent classification in batch evaluation; 1 is sequential.
	Workers int `yaml:"workers" json:"workers"`

	// Store configures named dataset storage.
	Store StoreConfig `yaml:"store" json:"store"`

	// Logging configures diagnostics written to stderr.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// StoreConfig selects the dataset store backend.
type StoreConfig struct {
	// Driver is "sqlite" or "bolt".
	Driver string `yaml:"driver" json:"driver"`
	Path   string `yaml:"path" json:"path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		K:       3,
		Workers: 1,
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "knn.sqlite",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the configuration with the following precedence:
//  1. Environment variables (KNN_*)
//  2. Configuration file at path, when it exists
//  3. Default values
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("KNN_K"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: KNN_K: %w", err)
		}
		cfg.K = k
	}
	if v := os.Getenv("KNN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: KNN_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("KNN_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("KNN_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("KNN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("KNN_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks the configuration for invalid values. The upper bound of K
// depends on the training set and is checked when a session starts.
func (c *Config) Validate() error {
	if c.K <= 0 {
		return fmt.Errorf("k must be positive, got %d", c.K)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Store.Driver {
	case "sqlite", "bolt":
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store path must be set")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Logging.Format)
	}
	return nil
}
