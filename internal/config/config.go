// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Storage backends accepted in STORAGE_BACKEND
const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Proxy    ProxyConfig
}

// StorageConfig selects the lesson backend
type StorageConfig struct {
	Backend      string
	SeedExamples bool
}

// DatabaseConfig holds database connection settings.
// URL, when set, is a complete driver DSN and wins over the separate parts.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds the lesson cache settings; the cache is off when Host is empty
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// ProxyConfig switches the API to forward requests to an external server
type ProxyConfig struct {
	Enabled bool
	URL     string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// Proxy configuration
	if cfg.Proxy.Enabled, err = boolEnv("USE_EXTERNAL_API", false); err != nil {
		return nil, err
	}
	if cfg.Proxy.Enabled {
		rawURL := strings.TrimSpace(os.Getenv("EXTERNAL_API_URL"))
		if rawURL == "" {
			return nil, fmt.Errorf("EXTERNAL_API_URL is required when USE_EXTERNAL_API is true")
		}
		u, err := url.Parse(rawURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid EXTERNAL_API_URL: %q", rawURL)
		}
		cfg.Proxy.URL = strings.TrimRight(rawURL, "/")
	}

	// Storage configuration
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND")))
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = StorageMySQL
	}
	if cfg.Storage.Backend != StorageMySQL && cfg.Storage.Backend != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s or %s", cfg.Storage.Backend, StorageMySQL, StorageMemory)
	}
	// the volatile backend starts with the examples unless told otherwise
	if cfg.Storage.SeedExamples, err = boolEnv("SEED_EXAMPLE_LESSONS", cfg.Storage.Backend == StorageMemory); err != nil {
		return nil, err
	}

	// Database configuration, only needed for the durable backend
	if cfg.Storage.Backend == StorageMySQL && !cfg.Proxy.Enabled {
		if err := loadDatabase(&cfg.Database); err != nil {
			return nil, err
		}
	}

	// Redis configuration
	cfg.Redis.Host = strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	cfg.Redis.TTL = 5 * time.Minute
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		cfg.Redis.TTL, err = time.ParseDuration(ttl)
		if err != nil || cfg.Redis.TTL <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL: %q", ttl)
		}
	}

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	// Logging configuration
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func loadDatabase(db *DatabaseConfig) error {
	if rawURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); rawURL != "" {
		dsn, err := normalizeDSN(rawURL)
		if err != nil {
			return fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		db.URL = dsn
		return nil
	}

	required := map[string]*string{
		"DB_HOST":     &db.Host,
		"DB_USER":     &db.User,
		"DB_PASSWORD": &db.Password,
		"DB_NAME":     &db.DBName,
	}
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		value := os.Getenv(key)
		if value == "" {
			return fmt.Errorf("%s is required", key)
		}
		*required[key] = value
	}

	portStr := os.Getenv("DB_PORT")
	if portStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = port

	return nil
}

// normalizeDSN accepts a go-sql-driver DSN, optionally prefixed with "mysql://",
// and makes sure DATETIME columns are scanned into time.Time
func normalizeDSN(raw string) (string, error) {
	dsnCfg, err := mysql.ParseDSN(strings.TrimPrefix(raw, "mysql://"))
	if err != nil {
		return "", err
	}
	dsnCfg.ParseTime = true
	return dsnCfg.FormatDSN(), nil
}

func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func intEnv(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the host:port of the cache server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CacheEnabled reports whether the Redis lesson cache is configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}
