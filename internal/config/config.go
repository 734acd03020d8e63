// Package config loads the bagua CLI configuration from YAML and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/bagua/bagua"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all bagua configuration.
type Config struct {
	// Default input mode: text, number, binary
	Mode string `yaml:"mode"`

	// Locale for labels and element traits (en-US, zh-CN)
	Locale string `yaml:"locale"`

	// Output format: text or json
	Format string `yaml:"format"`

	// Number of descriptors rendered in detail before the summary
	DetailLimit int `yaml:"detail_limit"`

	// Color enables styled terminal output
	Color bool `yaml:"color"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:        "text",
		Locale:      "zh-CN",
		Format:      FormatText,
		DetailLimit: 3,
		Color:       true,
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns ~/.config/bagua/config.yaml, or "" if the home
// directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bagua", "config.yaml")
}

// Load reads configuration from path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BAGUA_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("BAGUA_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("BAGUA_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("BAGUA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BAGUA_DETAIL_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DetailLimit = n
		}
	}
	// NO_COLOR convention: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		c.Color = false
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, ok := bagua.ParseMode(c.Mode); !ok {
		return fmt.Errorf("invalid mode %q (want text, number or binary)", c.Mode)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
		c.Format = strings.ToLower(c.Format)
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}
	if c.DetailLimit < 0 {
		return fmt.Errorf("detail_limit must be >= 0, got %d", c.DetailLimit)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("locale is required")
	}
	return nil
}

// InputMode returns the parsed default mode.
func (c *Config) InputMode() bagua.Mode {
	m, _ := bagua.ParseMode(c.Mode)
	return m
}
