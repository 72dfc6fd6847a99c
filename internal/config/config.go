package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	// User store: accounts, characters, inventory, equipment
	UserDBUser     string
	UserDBPassword string
	UserDBHost     string
	UserDBPort     string
	UserDBName     string

	// Game store: item catalog
	GameDBUser     string
	GameDBPassword string
	GameDBHost     string
	GameDBPort     string
	GameDBName     string

	// JWT signing secret for session tokens
	SessionSecret string
	TokenTTL      time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		UserDBUser:     getEnv("USER_DB_USER", "postgres"),
		UserDBPassword: getEnv("USER_DB_PASSWORD", "postgres"),
		UserDBHost:     getEnv("USER_DB_HOST", "localhost"),
		UserDBPort:     getEnv("USER_DB_PORT", "5432"),
		UserDBName:     getEnv("USER_DB_NAME", "itemsim_users"),

		GameDBUser:     getEnv("GAME_DB_USER", "postgres"),
		GameDBPassword: getEnv("GAME_DB_PASSWORD", "postgres"),
		GameDBHost:     getEnv("GAME_DB_HOST", "localhost"),
		GameDBPort:     getEnv("GAME_DB_PORT", "5432"),
		GameDBName:     getEnv("GAME_DB_NAME", "itemsim_game"),

		SessionSecret: getEnv("SESSION_SECRET_KEY", ""),
	}

	portStr := getEnv("PORT", "3018")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttlStr := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL value: %w", err)
	}
	cfg.TokenTTL = ttl

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET_KEY environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// UserDBConnString returns the user store connection string
func (c *Config) UserDBConnString() string {
	return connString(c.UserDBUser, c.UserDBPassword, c.UserDBHost, c.UserDBPort, c.UserDBName)
}

// GameDBConnString returns the game store connection string
func (c *Config) GameDBConnString() string {
	return connString(c.GameDBUser, c.GameDBPassword, c.GameDBHost, c.GameDBPort, c.GameDBName)
}

func connString(user, password, host, port, name string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name)
}
