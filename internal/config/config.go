package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	MarkupPath string    `yaml:"markup-path" env:"MARKUP_PATH" env-default:"./board.html" validate:"required"`
	Selectors  Selectors `yaml:"selectors"`
	Moves      []Move    `yaml:"moves" validate:"dive"`
}

type Selectors struct {
	Board string `yaml:"board" env:"BOARD_SELECTOR" env-default:"div.board" validate:"required"`
	Row   string `yaml:"row" env:"ROW_SELECTOR" env-default:"div.row" validate:"required"`
	Tile  string `yaml:"tile" env:"TILE_SELECTOR" env-default:"div.tile" validate:"required"`
}

// Move - a mark replayed on the started game, in order.
type Move struct {
	Column int    `yaml:"column" validate:"min=0"`
	Row    int    `yaml:"row" validate:"min=0"`
	Mark   string `yaml:"mark" validate:"required,oneof=empty crossed queen"`
}

var validate = validator.New()

// Load - reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
