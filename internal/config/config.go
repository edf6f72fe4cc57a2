package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port            string `validate:"required,numeric"`
	AdminPort       string `validate:"required,numeric,nefield=Port"`
	ShutdownTimeout int    `validate:"gte=1"` // graceful shutdown timeout in seconds

	// Logging
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty bool

	// Key-value store configuration
	KVBackend string `validate:"oneof=memory csv redis mysql badger"`
	KVPath    string // file for csv, directory for badger

	// MySQL configuration
	MySQLDSN string `validate:"required_if=KVBackend mysql"`

	// Redis configuration
	RedisAddr     string `validate:"required_if=KVBackend redis"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	// Client info resolution
	IPHeaders      []string `validate:"min=1,dive,required"`
	CountryHeader  string   `validate:"required"`
	DefaultIP      string
	DefaultCountry string
}

// Load reads configuration from environment variables
// with sensible defaults
func Load() *Config {
	// Load .env file if it exists (for local development)
	// In production/Docker, environment variables are set directly
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		AdminPort:       getEnv("ADMIN_PORT", "3001"),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 5),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),

		// Datastore config (default: append-only CSV file)
		// An empty path lets the store pick its per-backend default
		KVBackend: strings.ToLower(getEnv("KV_BACKEND", "csv")),
		KVPath:    getEnv("KV_PATH", ""),

		MySQLDSN: getEnv("MYSQL_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// Cloudflare headers by default
		IPHeaders:      getEnvAsList("IP_HEADER", []string{"CF-Connecting-IP"}),
		CountryHeader:  getEnv("COUNTRY_HEADER", "CF-IPCountry"),
		DefaultIP:      getEnvOrEmpty("DEFAULT_IP", "127.0.0.1"),
		DefaultCountry: getEnvOrEmpty("DEFAULT_COUNTRY", "XX"),
	}
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvOrEmpty is like getEnv but honours a variable that is set to ""
// DEFAULT_IP= disables the fallback address entirely
func getEnvOrEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsBool reads an environment variable as a boolean
// Returns default if not set or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsList reads a comma separated environment variable
// Empty items are dropped; returns default if nothing is left
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}

	return values
}
