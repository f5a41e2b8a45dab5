package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Authentication
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// External retrieval/answer engine
	EngineURL     string
	EngineTimeout time.Duration

	// CORS: the single trusted browser origin
	CORSOrigin string

	// Logging
	LogLevel string

	// Rate limiting (requests per minute)
	IPRateLimit   int
	UserRateLimit int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":3000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", "memory-gateway"),
		JWTAudience: getEnv("JWT_AUDIENCE", "memory-api"),

		EngineURL:     getEnv("ENGINE_URL", "http://localhost:8000"),
		EngineTimeout: time.Duration(getEnvInt("ENGINE_TIMEOUT_MS", 30000)) * time.Millisecond,

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		IPRateLimit:   getEnvInt("IP_RATE_LIMIT", 100),
		UserRateLimit: getEnvInt("USER_RATE_LIMIT", 200),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.EngineURL == "" {
			return fmt.Errorf("ENGINE_URL is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
