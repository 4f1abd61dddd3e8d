package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig points at the seed file. An empty path uses the built-in seed.
type CatalogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone     string
	DateFormat   string `mapstructure:"date_format"`
	HistoryLimit int    `mapstructure:"history_limit"`

	// DefaultFilter is the item filter the dashboard opens with: "all" or "reorder".
	DefaultFilter string `mapstructure:"default_filter"`
}

// LogConfig controls the zap file logger.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix MAINTSTOCK_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("catalog.path", "")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.date_format", "02 Jan 15:04")
	v.SetDefault("ui.history_limit", 10)
	v.SetDefault("ui.default_filter", "all")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "maintstock", "maintstock.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MAINTSTOCK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "maintstock"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MAINTSTOCK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit one must exist and parse
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.HistoryLimit <= 0 {
		return Config{}, fmt.Errorf("ui.history_limit must be positive, got %d", c.UI.HistoryLimit)
	}
	return c, nil
}
