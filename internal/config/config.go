package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	CatalogFile string
	SeedWorkers int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		SeedWorkers: getenvInt("SEED_WORKERS", 1),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

// Production reports whether the process runs with production hardening
// (JWT required, no header-based tenancy fallback).
func (c Config) Production() bool { return c.Env == "production" }
