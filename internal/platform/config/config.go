// Package config loads process-wide configuration from the environment.
// All environment access happens once at startup; request logic only ever
// sees the resulting immutable Config value.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DB holds the relational database connection settings.
type DB struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// Redis holds the Redis connection settings. Redis is optional: an empty
// Host means the server runs without a cache.
type Redis struct {
	Host     string
	Port     string
	Password string
}

// Addr returns the host:port address for the Redis client.
func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

// Config is the process-wide immutable configuration.
type Config struct {
	Port      string
	DB        DB
	Redis     Redis
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads a .env file if present, then the environment, and returns the
// assembled configuration. JWT_SECRET is required; a missing secret is a
// startup error, never a per-request fallback.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		ttl = parsed
	}

	return &Config{
		Port: getenvDefault("PORT", "8080"),
		DB: DB{
			Host:          getenvDefault("DB_HOST", "localhost"),
			Port:          getenvDefault("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		Redis: Redis{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getenvDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
