package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"SQUARE_GAME_LOG_LEVEL" env-default:"info"`
	RecolorDelay time.Duration `yaml:"recolor-delay" env:"SQUARE_GAME_RECOLOR_DELAY" env-default:"500ms"`
	Prompt       string        `yaml:"prompt" env:"SQUARE_GAME_PROMPT" env-default:"> "`
}

// MustLoad - load all configurations in config.yml file, falling back to the
// environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}
