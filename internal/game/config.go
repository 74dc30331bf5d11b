package game

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the shell settings. Everything has a sensible default, so
// running without a config file just works; a yaml file or environment
// variables override.
type Config struct {
	WindowWidth  int     `yaml:"window-width" env:"GRIDFIVE_WINDOW_WIDTH" env-default:"960"`
	WindowHeight int     `yaml:"window-height" env:"GRIDFIVE_WINDOW_HEIGHT" env-default:"960"`
	WindowTitle  string  `yaml:"window-title" env:"GRIDFIVE_WINDOW_TITLE" env-default:"Grid Five"`
	InitialZoom  float64 `yaml:"initial-zoom" env:"GRIDFIVE_INITIAL_ZOOM" env-default:"1.0"`
	LogLevel     string  `yaml:"log-level" env:"GRIDFIVE_LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads the yaml file at path when it exists, otherwise falls
// back to environment variables and tag defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
			}
			return cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}
	return cfg, nil
}
