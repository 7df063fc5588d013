// Package config loads the optional user configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const defaultPlayerName = "Alex"

type Config struct {
	Player PlayerConfig `toml:"player"`
}

type PlayerConfig struct {
	Name           string `toml:"name,omitempty"`
	SkipAssessment bool   `toml:"skip_assessment,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Player: PlayerConfig{Name: defaultPlayerName}}
}

// DefaultPath resolves the config file path in priority order:
// 1. HRQUEST_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/hrquest/config.toml
// 3. ~/.config/hrquest/config.toml
func DefaultPath() (string, error) {
	if p := os.Getenv("HRQUEST_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hrquest", "config.toml"), nil
}

// Load reads the config at path. A missing file is not an error: the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Player.Name == "" {
		cfg.Player.Name = defaultPlayerName
	}
	return cfg, nil
}
