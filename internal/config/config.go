package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	Mongo MongoConfig
}

// MongoConfig contains MongoDB connection parameters.
type MongoConfig struct {
	URI      string
	Database string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8000")
	cfg.Env = getEnv("ENV", "development")

	// MongoDB
	cfg.Mongo = MongoConfig{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DB", "eclatdelune"),
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("mongo configuration incomplete: ensure MONGO_URI is set")
	}
	if cfg.Mongo.Database == "" {
		return nil, errors.New("mongo configuration incomplete: ensure MONGO_DB is set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
