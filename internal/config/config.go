package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior. Environment values are read once here;
// components receive explicit fields, never ambient process state.
type Config struct {
	// NoEmoji switches banners to the plain-text rendering. Cosmetic only.
	NoEmoji  bool   `env:"GOKATA_NO_EMOJI"`
	DataDir  string `env:"GOKATA_DATA_DIR"`
	Manifest string `env:"GOKATA_MANIFEST"`
	Verbose  bool   `env:"GOKATA_VERBOSE"`
	LogPath  string `env:"GOKATA_LOG"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Manifest == "" {
		c.Manifest = "exercises.yaml"
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "gokata")
	}
	return nil
}

func (c Config) StatePath() string {
	return filepath.Join(c.DataDir, "progress.db")
}
