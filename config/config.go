package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"KNUCKLEBONES_LOG_LEVEL" env-default:"info"`
	Seed     uint64   `yaml:"seed" env:"KNUCKLEBONES_SEED" env-default:"0"` // 0 draws a seed from crypto/rand
	MaxTurns int      `yaml:"max-turns" env:"KNUCKLEBONES_MAX_TURNS" env-default:"300"`
	SelfPlay SelfPlay `yaml:"self-play" env-prefix:"KNUCKLEBONES_SELF_PLAY_"`
}

type SelfPlay struct {
	Games       int    `yaml:"games" env:"GAMES" env-default:"100"`
	Workers     int    `yaml:"workers" env:"WORKERS" env-default:"8"`
	OutputDir   string `yaml:"output-dir" env:"OUTPUT_DIR" env-default:"experiments"`
	RecordMoves bool   `yaml:"record-moves" env:"RECORD_MOVES" env-default:"false"`
}

// Load reads the YAML file at path, with environment overrides, or only the
// environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
