package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the program configuration.
type Settings struct {
	Title   string
	Layout  string
	Log     LogSettings
	Plugins PluginSettings
}

// LogSettings controls the log file.
type LogSettings struct {
	Enabled bool
	Dir     string
	Level   string
}

// PluginSettings controls page plugins.
type PluginSettings struct {
	Enabled bool
	Event   string
	Prefix  string
	Paths   []string
}

// LoadSettings reads settings from path (or the default location) and the
// environment. Env var overrides use prefix NSPANEL_.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("title", DefaultTitle())
	v.SetDefault("layout", filepath.Join(home, ".config", "nspanel-pages", "layout.yaml"))
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", filepath.Join(os.TempDir(), "nspanel-pages"))
	v.SetDefault("log.level", "info")
	v.SetDefault("plugins.enabled", false)
	v.SetDefault("plugins.event", string(pagesEvent))
	v.SetDefault("plugins.prefix", "nspanel-page")
	v.SetDefault("plugins.paths", []string{})

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv("NSPANEL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "nspanel-pages"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NSPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine, an explicit one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

// SlogLevel parses the configured level, falling back to info.
func (l LogSettings) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
