// Package config loads server configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// StoreBackend selects the storage implementation: "sqlite" or
	// "memory".
	StoreBackend string

	// DBPath is the SQLite database file path. Ignored for the memory
	// backend.
	DBPath string
}

// Load reads configuration from the environment, after loading a .env
// file if one exists. Missing keys fall back to development defaults.
func Load() Config {
	// A missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return Config{
		Addr:         ":" + getEnv("SERVER_PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "sqlite"),
		DBPath:       getEnv("DB_PATH", "./data/expenses.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
