package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL = "mecanica.db"
	defaultHTTPAddr    = ":8080"
)

type Config struct {
	DatabaseURL        string
	HTTPAddr           string
	CORSAllowedOrigins []string
}

// Load reads configuration from the environment, with .env as a fallback
// for local development. Missing values fall back to dev defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
