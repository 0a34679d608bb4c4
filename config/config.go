package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a new Config instance. Development and test read
// environment variables with local defaults; production reads Docker
// secrets and refuses to start without them.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if GetEnvironment() == Production {
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	} else {
		loadDevConfig(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDevConfig loads configuration for development and test environments
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "localhost")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = getEnv("DB_PASSWORD", "postgres")
	cfg.DBName = getEnv("DB_NAME", "fitpulse")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0
	cfg.JWTSecret = getEnv("JWT_SECRET", "dev-secret")
}

// loadProdConfig loads configuration for production using ONLY Docker secrets
func loadProdConfig(cfg *Config) error {
	cfg.ServerPort = readSecret("server_port")
	cfg.ServerHost = readSecret("server_host")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.RedisDB = 0
	cfg.JWTSecret = readSecret("jwt_secret")

	if cfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret secret is required in production")
	}
	if cfg.DBPassword == "" {
		return fmt.Errorf("db_password secret is required in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
