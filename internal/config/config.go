// Package config loads runtime settings from an optional TOML file,
// environment variables, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jmehta/arxtab/internal/arxiv"
	"github.com/jmehta/arxtab/internal/seen"
)

type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Seen    SeenConfig    `mapstructure:"seen"`
}

type ServiceConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	DefaultQuery string        `mapstructure:"default_query"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

type SeenConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from path, or from the default location when path
// is empty. A missing file is fine; defaults and ARXTAB_* environment
// variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("service.base_url", arxiv.DefaultBaseURL)
	v.SetDefault("service.default_query", arxiv.DefaultQuery)
	v.SetDefault("service.http_timeout", 15*time.Second)
	v.SetDefault("seen.path", "")

	v.SetEnvPrefix("ARXTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Seen.Path == "" {
		seenPath, err := seen.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.Seen.Path = seenPath
	}
	cfg.Seen.Path = expandHome(cfg.Seen.Path)
	return &cfg, nil
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "arxtab")
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
