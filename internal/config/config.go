package config

import "os"

// Config holds the process-level configuration for the application.
type Config struct {
	DatabasePath string
	TablesDir    string
	LogLevel     string
}

// NewFromEnv creates a new Config object from environment variables.
// Every value has a workable default: the database lives under ./data and
// the built-in tables are used unless SHOPPING_TABLES_DIR points elsewhere.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		DatabasePath: os.Getenv("SHOPPING_DB_PATH"),
		TablesDir:    os.Getenv("SHOPPING_TABLES_DIR"),
		LogLevel:     os.Getenv("SHOPPING_LOG_LEVEL"),
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/shopping.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
