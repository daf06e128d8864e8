package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the application configuration, read from the environment.
type Config struct {
	// File is the wallet file, or the Redis key when RedisURL is set.
	File     string `env:"WALLET_FILE" envDefault:"wallet.json"`
	Currency string `env:"WALLET_CURRENCY" envDefault:"USD"`
	LogLevel string `env:"WALLET_LOG_LEVEL" envDefault:"info"`
	RedisURL string `env:"WALLET_REDIS_URL"`
	// GlamourStyle is the glamour standard style used on terminals.
	GlamourStyle string `env:"WALLET_GLAMOUR_STYLE" envDefault:"auto"`
}

// LoadConfig reads the configuration from the environment.
//
// Variables are first read from the dotenv files (".env" by default), when
// they exist. Process environment variables take precedence over them.
func LoadConfig(dotenvs ...string) (Config, error) {
	if len(dotenvs) == 0 {
		dotenvs = []string{".env"}
	}
	environment := env.ToMap(os.Environ())
	for _, file := range dotenvs {
		vars, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range vars {
			if _, exists := environment[k]; !exists {
				environment[k] = v
			}
		}
	}

	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the currency and the log level, and normalizes the currency code.
func (c *Config) Validate() error {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.File == "" {
		return errors.New("wallet file cannot be empty")
	}
	return nil
}
