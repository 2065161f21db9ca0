package config

import (
	"fmt"
	"net/url"
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

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if err := validateURL("APIBaseURL", cfg.APIBaseURL); err != nil {
		errors = append(errors, err.Error())
	}
	if err := validateURL("AIBackendURL", cfg.AIBackendURL); err != nil {
		errors = append(errors, err.Error())
	}
	if cfg.StateDir == "" {
		errors = append(errors, ValidationError{Field: "StateDir", Message: "must not be empty"}.Error())
	}
	if cfg.PageSize < 1 {
		errors = append(errors, ValidationError{Field: "PageSize", Message: "must be a positive integer"}.Error())
	}
	if cfg.HTTPTimeout <= 0 {
		errors = append(errors, ValidationError{Field: "HTTPTimeout", Message: "must be positive"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: field, Message: fmt.Sprintf("%q is not a valid URL", raw)}
	}
	return nil
}
