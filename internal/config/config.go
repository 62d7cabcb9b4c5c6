package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig selects the book dataset
type CatalogConfig struct {
	Path string `mapstructure:"path"` // Empty uses the embedded sample catalog
}

// CacheConfig holds the decoded-catalog cache location
type CacheConfig struct {
	Dir string `mapstructure:"dir"` // Empty means memory-only
}

// UIConfig holds UI configuration
type UIConfig struct {
	Mouse  bool   `mapstructure:"mouse"`
	Accent string `mapstructure:"accent"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Dir: defaultCachePath(),
		},
		UI: UIConfig{
			Mouse:  true,
			Accent: "#3B82F6",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf", "shelf.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shelf", "shelf.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shelf")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "shelf", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shelf", "cache")
	}
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// newViper builds a viper instance seeded with defaults and env overrides.
// Every key is registered as a default so AutomaticEnv can resolve it on Unmarshal.
func newViper() *viper.Viper {
	d := DefaultConfig()
	v := viper.New()

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.accent", d.UI.Accent)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)

	// Environment variable overrides: SHELF_CATALOG_PATH, SHELF_LOGGING_LEVEL, ...
	v.SetEnvPrefix("SHELF")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An explicit file must exist; otherwise the default locations are searched
// and a missing file is not an error.
func LoadConfig(file string) (*Config, error) {
	v := newViper()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	for _, p := range []*string{&cfg.Catalog.Path, &cfg.Cache.Dir, &cfg.Logging.File} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}

	return cfg, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// SaveConfig writes cfg to config.yaml in dir, or the default config
// directory when dir is empty
func SaveConfig(cfg *Config, dir string) (string, error) {
	if dir == "" {
		dir = defaultConfigPath()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("cache.dir", cfg.Cache.Dir)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
