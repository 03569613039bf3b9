// Package config handles configuration loading and validation for digiprefs
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. DIGIPREFS_STORE_BACKEND.
const EnvPrefix = "DIGIPREFS"

// Config represents the application configuration for digiprefs
type Config struct {
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// StoreConfig selects where preferences are persisted
type StoreConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "yaml" or "sqlite"
	Path    string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// UIConfig holds terminal presentation settings
type UIConfig struct {
	Theme   string `mapstructure:"theme" yaml:"theme"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
	Dense   bool   `mapstructure:"dense" yaml:"dense"`
}

var (
	validBackends = []string{"yaml", "sqlite"}
	validLevels   = []string{"debug", "info", "warn", "error"}
)

// Dir returns the per-user configuration directory for digiprefs.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "digiprefs")
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "yaml",
			Path:    filepath.Join(Dir(), "preferences.yaml"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Theme: "aurora",
		},
	}
}

// GetConfigPath returns the default path of digiprefs.yaml
func GetConfigPath() string {
	return filepath.Join(Dir(), "digiprefs.yaml")
}

// Load reads configuration from path (or the default location when empty),
// then applies DIGIPREFS_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("store.backend", defaults.Store.Backend)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.no_color", defaults.UI.NoColor)
	v.SetDefault("ui.dense", defaults.UI.Dense)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = GetConfigPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if !slices.Contains(validBackends, c.Store.Backend) {
		return fmt.Errorf("store.backend must be one of %s", strings.Join(validBackends, ", "))
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s", strings.Join(validLevels, ", "))
	}
	return nil
}
