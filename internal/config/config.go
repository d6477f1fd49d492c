package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "5002"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=buildpro port=5432 sslmode=disable"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if os.Getenv("DATABASE_DSN") == "" {
		log.Println("[WARN] DATABASE_DSN not set, using the local development default")
	}
	if os.Getenv("CORS_ALLOWED_ORIGINS") == "" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS not set, using the local development default")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
