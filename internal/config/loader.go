package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the run settings of the racing CLI. The round count is not
// part of it.
type Config struct {
	Seed   int64  `yaml:"seed" env:"RACING_SEED"`
	Locale string `yaml:"locale" env:"RACING_LOCALE"`
	Out    string `yaml:"out" env:"RACING_OUT"`
	Log    bool   `yaml:"log" env:"RACING_LOG"`
}

func Default() Config {
	return Config{Locale: "ko"}
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
