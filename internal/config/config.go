// Package config loads rfp settings from ~/.rfp/config.toml and RFP_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "RFP"

	// DirName is the directory under the user's home holding config and state.
	DirName = ".rfp"

	KeyStateBackend  = "state.backend"
	KeyStatePath     = "state.path"
	KeyFavoritesPath = "favorites.path"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyDrawMode      = "sampling.draw_mode"
	KeyMediaMaxSize  = "media.max_size"

	StateBackendTOML = "toml"
	StateBackendFile = "file"

	defaultMediaMaxSize = "64MB"
)

// Load applies defaults, environment overrides and the optional config file
// to cfg. A missing config file is not an error.
func Load(cfg *viper.Viper) (*viper.Viper, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)

	cfg.SetDefault(KeyStateBackend, StateBackendTOML)
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "text")
	cfg.SetDefault(KeyDrawMode, "uniform")
	cfg.SetDefault(KeyMediaMaxSize, defaultMediaMaxSize)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, DirName), nil
}

// MediaMaxSize parses media.max_size, accepting humanized sizes like "64MB".
func MediaMaxSize(cfg *viper.Viper) (int64, error) {
	raw := strings.TrimSpace(cfg.GetString(KeyMediaMaxSize))
	if raw == "" {
		raw = defaultMediaMaxSize
	}

	size, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", KeyMediaMaxSize, err)
	}

	return int64(size), nil
}
