package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.LeetCode.Endpoint != "" {
		u, err := url.Parse(cfg.LeetCode.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "leetcode.endpoint",
				Message: "must be an http or https URL",
			})
		}
	}

	if cfg.LeetCode.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "leetcode.timeout",
			Message: "must not be negative",
		})
	}

	if cfg.Test.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "test.timeout",
			Message: "must not be negative",
		})
	}

	if cfg.Templates != "" {
		if strings.TrimSpace(cfg.Templates) == "" {
			errs = append(errs, ValidationError{
				Field:   "templates",
				Message: "must not be empty or whitespace only",
			})
		} else if info, err := os.Stat(cfg.Templates); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "templates",
				Message: fmt.Sprintf("%s is not a directory", cfg.Templates),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return Validate(cfg)
}
