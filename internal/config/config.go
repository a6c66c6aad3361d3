// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the classifier service and CLI.
type Config struct {
	Addr         string
	LogLevel     string
	MaxUploadMB  int
	BatchWorkers int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; absence is not an error so the
// same path works in containers.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:         getEnv("ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 32),
		BatchWorkers: getEnvInt("BATCH_WORKERS", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
