// ABOUTME: crag configuration management.
// ABOUTME: JSON settings file with CRAG_* environment overrides and the storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/storage"
	"github.com/harperreed/crag/internal/training"
)

// Config stores crag tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; crag.db lives here.
	// Supports ~ expansion. Defaults to ~/.local/share/crag.
	DataDir string `json:"data_dir,omitempty" env:"CRAG_DATA_DIR"`

	// DefaultSystem is the grading system used when a command is not told one.
	DefaultSystem string `json:"default_system,omitempty" env:"CRAG_DEFAULT_SYSTEM"`

	// TargetGrade is the goal grade used by progress and report.
	TargetGrade string `json:"target_grade,omitempty" env:"CRAG_TARGET_GRADE"`

	// LoadWeeks is the training load window.
	LoadWeeks int `json:"load_weeks,omitempty" env:"CRAG_LOAD_WEEKS"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" env:"CRAG_LOG_LEVEL"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultSystem returns the configured grading system, defaulting to V-scale.
func (c *Config) GetDefaultSystem() grade.System {
	s, err := grade.ParseSystem(c.DefaultSystem)
	if err != nil {
		return grade.VScale
	}
	return s
}

// GetLoadWeeks returns the training load window, defaulting to four weeks.
func (c *Config) GetLoadWeeks() int {
	if c.LoadWeeks <= 0 {
		return training.DefaultWeeks
	}
	return c.LoadWeeks
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository in the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	db, err := storage.Open(filepath.Join(c.GetDataDir(), "crag.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "crag", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
