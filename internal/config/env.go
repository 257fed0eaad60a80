package config

import (
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// getenv returns the value of the requested environment variable or the
// supplied fallback when empty.
func getenv(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

// Validate validates a struct using validator tags.
func Validate(v any) error {
	return validate.Struct(v)
}
