package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Curriculum configuration
	CurriculumName string
	// StrictContent aborts startup when the content catalog fails the
	// strict validation pass; otherwise offending records are skipped
	StrictContent bool
	// MaxSubgraphDepth caps the depth parameter of subgraph queries
	MaxSubgraphDepth int

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		CurriculumName:   getEnv("CURRICULUM_NAME", "mathematics"),
		StrictContent:    getEnvBool("STRICT_CONTENT", true),
		MaxSubgraphDepth: getEnvInt("MAX_SUBGRAPH_DEPTH", 5),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableCORS:       getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.MaxSubgraphDepth < 1 {
		return fmt.Errorf("max subgraph depth must be at least 1, got %d", c.MaxSubgraphDepth)
	}
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
