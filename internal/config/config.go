package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	MySQLDSN    string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/budgetbuddy?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"change-me"`
	AdminRegKey string `env:"ADMIN_REGISTRATION_KEY" envDefault:"default-admin-secret-123"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load parses Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
