package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable for the
// current environment. Development and test tolerate the built-in
// defaults; production must supply real credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"SERVER_HOST": cfg.ServerHost,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
		"DB_SSL_MODE": cfg.DBSSLMode,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if IsProduction() {
		if cfg.DBPassword == "" || cfg.DBPassword == "postgres" {
			errors = append(errors, "db_password secret is required in production")
		}
		if cfg.JWTSecret == "" || cfg.JWTSecret == "your-secret-key" {
			errors = append(errors, "jwt_secret secret is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
