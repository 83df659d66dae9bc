package config

import (
	"fmt"
	"log"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string `env:"DB_PORT" envDefault:"5431"`
	DBUser       string `env:"DB_USER" envDefault:"contribhub_user"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"contribhub_pass"`
	DBName       string `env:"DB_NAME" envDefault:"contribhub_db"`
	ServerPort   string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"supersecretkey"`
	GithubAPIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com/"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Migrate      bool   `env:"DB_MIGRATE" envDefault:"true"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN is the gorm/pgx connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// MigrationURL is the database URL understood by golang-migrate's pgx/v5 driver.
func (c *Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
