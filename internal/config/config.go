package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BotDelayMS int    `yaml:"bot-delay-ms" env:"BOT_DELAY_MS" env-default:"1000"`
	NoColor    bool   `yaml:"no-color" env:"NO_COLOR" env-default:"false"`
}

// BotDelay - the pause before a computer move.
func (that *Config) BotDelay() time.Duration {
	return time.Duration(that.BotDelayMS) * time.Millisecond
}

// MustLoad - loads configuration from config.yml, falling back to
// environment variables and defaults when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
