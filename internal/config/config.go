// Package config loads the application configuration from the
// environment once at startup; the result is treated as immutable.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the full application configuration.
type Config struct {
	// Server
	Port    string
	BaseURL string

	// Database
	DatabasePath string

	// Auth
	JWTSecret string

	// AdminEmail is the address whose identity receives the admin
	// claim when it registers a profile. Empty disables the bootstrap.
	AdminEmail string
}

// Load reads the configuration from environment variables. Missing
// required variables are reported together in one error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "bookclub.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
	}
	cfg.BaseURL = strings.TrimSuffix(envOrDefault("BASE_URL", "http://localhost:"+cfg.Port), "/")

	var missing []string
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
