// Package config handles MoodCraft configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration
type Config struct {
	// Paths
	DataDir string `json:"data_dir"`

	// Server
	Server ServerConfig `json:"server"`

	// Storage
	Storage StorageConfig `json:"storage"`

	// Submission UX
	Submission SubmissionConfig `json:"submission"`

	// Logging
	LogLevel string `json:"log_level"`
}

// ServerConfig for HTTP server
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// StorageConfig selects and locates the history backend
type StorageConfig struct {
	// Backend is "sqlite" or "record" (single JSON file)
	Backend string `json:"backend"`
	// Path overrides the default location under DataDir
	Path string `json:"path,omitempty"`
}

// SubmissionConfig tunes the submission flow
type SubmissionConfig struct {
	// RevealDelayMS is how long clients should hold the analysis
	// before revealing it. Purely cosmetic.
	RevealDelayMS int `json:"reveal_delay_ms"`
}

// Valid backend names
const (
	BackendSQLite = "sqlite"
	BackendRecord = "record"
)

// Default returns default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		DataDir: filepath.Join(home, ".moodcraft"),
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
		Submission: SubmissionConfig{
			RevealDelayMS: 1500,
		},
		LogLevel: "info",
	}
}

// StoragePath resolves the backend's on-disk location
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendRecord {
		return filepath.Join(c.DataDir, "mood-history.json")
	}
	return filepath.Join(c.DataDir, "moodcraft.db")
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRecord:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Submission.RevealDelayMS < 0 {
		return fmt.Errorf("reveal delay must not be negative")
	}
	return nil
}

// Load loads config from file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.json")
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Env overrides
	if dir := os.Getenv("MOODCRAFT_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves config to file
func (c *Config) Save(path string) error {
	if path == "" {
		path = filepath.Join(c.DataDir, "config.json")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
