// Package config loads the optional hedge.yaml settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/hedge/pkg/domain"
)

// DefaultPath is where the CLI looks when --config is not given.
const DefaultPath = "hedge.yaml"

// Config holds every tunable the CLI and serve command accept. Flags
// override whatever the file says.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Solve    SolveConfig    `yaml:"solve"`
	Display  DisplayConfig  `yaml:"display"`
	Export   ExportConfig   `yaml:"export"`
	Serve    ServeConfig    `yaml:"serve"`
}

type GenerateConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Algorithm string `yaml:"algorithm"`
	Seed      int64  `yaml:"seed"`
}

type SolveConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type DisplayConfig struct {
	Theme   string `yaml:"theme"`
	Unicode bool   `yaml:"unicode"`
}

type ExportConfig struct {
	Directory string `yaml:"directory"`
}

type ServeConfig struct {
	Address  string `yaml:"address"`
	RedisURL string `yaml:"redis_url"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Width:     21,
			Height:    11,
			Algorithm: domain.GeneratorIterative,
		},
		Solve: SolveConfig{
			Algorithm: domain.SolverBFS,
		},
		Display: DisplayConfig{
			Theme: "classic",
		},
		Serve: ServeConfig{
			Address: ":8080",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. A missing
// file at the default path is not an error; an explicitly requested file
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
