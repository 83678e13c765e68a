package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string   `env:"ENV" envDefault:"development"`
	LogLevel   string   `env:"LOG_LEVEL" envDefault:"info"`
	Host       string   `env:"HOST" envDefault:"127.0.0.1"`
	Port       string   `env:"PORT" envDefault:"3000"`
	CORSOrigin string   `env:"CORS_ORIGINS" envDefault:"*"`
	Version    string   `env:"APP_VERSION" envDefault:"dev"`
	Database   Database `envPrefix:"DB_"`
}

// Database contains SQLite connection parameters.
type Database struct {
	Path          string `env:"PATH" envDefault:"./data/journal.db"`
	MaxOpenConns  int    `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns  int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	BusyTimeoutMS int    `env:"BUSY_TIMEOUT_MS" envDefault:"5000"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
