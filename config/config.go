package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's environment configuration. Missing values fall
// back to development defaults.
type Config struct {
	Addr      string // listen address
	LevelFile string // YAML level set; empty means use the built-in levels
}

// Load reads .env if present and assembles the config. A missing .env is
// fine; real environment variables still apply.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	return Config{
		Addr:      getEnv("RELATIVITY_ADDR", ":8080"),
		LevelFile: getEnv("RELATIVITY_LEVELS", "levels.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
