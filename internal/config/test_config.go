package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the database settings for integration tests from TEST_DB_* variables.
// An empty Config (and no error) is returned when any of them is missing, so callers can skip.
func LoadTestConfig() (*Config, error) {
	// .env is optional, try both the repository root and the test package directory
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	values := make(map[string]string, 5)
	for _, key := range []string{"TEST_DB_HOST", "TEST_DB_PORT", "TEST_DB_USER", "TEST_DB_PASSWORD", "TEST_DB_NAME"} {
		value := os.Getenv(key)
		if value == "" {
			return cfg, nil
		}
		values[key] = value
	}

	port, err := strconv.Atoi(values["TEST_DB_PORT"])
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}

	cfg.Storage.Backend = StorageMySQL
	cfg.Database = DatabaseConfig{
		Host:     values["TEST_DB_HOST"],
		Port:     port,
		User:     values["TEST_DB_USER"],
		Password: values["TEST_DB_PASSWORD"],
		DBName:   values["TEST_DB_NAME"],
	}
	return cfg, nil
}

// Configured reports whether the test database settings were found
func (c *Config) Configured() bool {
	return c.Database.URL != "" || c.Database.Host != ""
}
