package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
	Environment    string `env:"APP_ENV" envDefault:"development"`
	ServerAddress  string `env:"SERVER_ADDRESS" envDefault:":8080"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`

	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SetupToken string `env:"SETUP_TOKEN" envDefault:"setup-token"`
}

// Load reads configuration from the environment, picking up a local
// .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Production reports whether secure-cookie enforcement applies.
func (c *Config) Production() bool {
	return c.Environment == "production"
}
