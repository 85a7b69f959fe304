package config

import (
	"os"
	"path/filepath"

	"fjacquet/txlabel/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory or its parent, if one exists. Variables already set are kept.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return "", err
		}
		return envFile, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLogging builds the application logger from the configuration
func ConfigureLogging(config *Config) logging.Logger {
	if config == nil {
		return logging.New(logging.Options{})
	}
	return logging.New(logging.Options{Level: config.Log.Level, Format: config.Log.Format})
}
