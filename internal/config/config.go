package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// ConfigDir holds the recipe catalog and staple vocabulary JSON files
	ConfigDir string

	// Chef upstream (OpenAI-compatible chat completion API)
	ChefBaseURL string
	ChefAPIKey  string
	ChefModel   string

	ExpiringSoonDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", DefaultDBName),
		ConfigDir:   getEnv("CONFIG_DIR", DefaultConfigDir),
		ChefBaseURL: getEnv("CHEF_BASE_URL", DefaultChefBaseURL),
		ChefAPIKey:  getEnv("CHEF_API_KEY", ""),
		ChefModel:   getEnv("CHEF_MODEL", DefaultChefModel),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	days, err := getEnvInt("EXPIRING_SOON_DAYS", DefaultExpiringSoonDays)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, fmt.Errorf("EXPIRING_SOON_DAYS must be at least 1, got %d", days)
	}
	cfg.ExpiringSoonDays = days

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
