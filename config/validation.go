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

// ValidateConfig checks that the settings the current environment cannot run
// without are present. Development and test get defaults for everything
// except the recipe API key; production must be configured explicitly.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.RecipeAPIKey == "" && GetEnvironment() != Test {
		errors = append(errors, ValidationError{Field: "RECIPE_API_KEY", Message: "recipe API key is required"}.Error())
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, ValidationError{Field: "JWT_SECRET", Message: "JWT secret is required in production"}.Error())
		}
		if cfg.DBPassword == "" {
			errors = append(errors, ValidationError{Field: "DB_PASSWORD", Message: "database password is required in production"}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}
