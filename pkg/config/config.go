package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/korjavin/homebar/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	// Directory holding the BadgerDB data files
	DataDir string

	// Default fixture paths for the import command
	CocktailBookPath string
	InventoryPath    string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		logger.Global.Warn("Error loading .env file: %v", err)
	}

	cfg := &Config{
		DataDir:          getEnvWithDefault("BAR_DATA_DIR", "data"),
		CocktailBookPath: getEnvWithDefault("BAR_COCKTAIL_BOOK", "fixtures/cocktail_book.json"),
		InventoryPath:    getEnvWithDefault("BAR_INVENTORY", "fixtures/inventory.json"),
	}

	logger.Global.Info("Configuration loaded: %+v", *cfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
