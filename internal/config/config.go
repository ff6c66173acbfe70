// Package config loads the mubench run configuration from mubench.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mubench/internal/format"
	"mubench/internal/logging"
	"mubench/internal/store"
)

// DefaultPath is where the CLI looks for a config file when --config is unset.
const DefaultPath = "mubench.yaml"

// Config is the content of mubench.yaml.
type Config struct {
	// DataPath is the corpus root: one directory per misuse.
	DataPath string `yaml:"data_path"`
	// Only is the white list of name substrings. Empty selects nothing.
	Only []string `yaml:"only"`
	// Skip is the black list of name substrings.
	Skip   []string     `yaml:"skip,omitempty"`
	DB     string       `yaml:"db"`
	Record bool         `yaml:"record"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig controls the statistics table printed after a run.
type ReportConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataPath: "data",
		DB:       store.DefaultDBPath,
		Record:   true,
		Log:      LogConfig{Level: "info", Format: "text"},
		Report:   ReportConfig{Format: "ascii"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DataPath = strings.TrimSpace(c.DataPath)
	c.DB = strings.TrimSpace(c.DB)
	if c.DB == "" {
		c.DB = store.DefaultDBPath
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the values the CLI cannot recover from.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("data_path is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format: must be text or json, got %q", c.Log.Format)
	}
	if _, err := format.ParseMode(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	return nil
}
