package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// transformTypes lists the recognized transform type names.
var transformTypes = map[string]bool{
	"pseudonymize":  true,
	"suppress":      true,
	"perturb":       true,
	"generalize":    true,
	"perturb_graph": true,
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateStore()...)
	errors = append(errors, c.validateDataset()...)

	for _, name := range c.ListTransforms() {
		tc := c.Transforms[name]
		errors = append(errors, c.validateTransform(name, &tc)...)
	}

	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateStore() ValidationErrors {
	var errors ValidationErrors

	if c.Store.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "store.host",
			Message: "host is required",
		})
	}

	if c.Store.Port <= 0 || c.Store.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "store.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Store.User == "" {
		errors = append(errors, ValidationError{
			Field:   "store.user",
			Message: "user is required",
		})
	}

	if c.Store.Database == "" {
		errors = append(errors, ValidationError{
			Field:   "store.database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[c.Store.TLS] {
		errors = append(errors, ValidationError{
			Field:   "store.tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if c.Store.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "store.max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if c.Store.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "store.max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateDataset() ValidationErrors {
	var errors ValidationErrors

	if c.Dataset.Table == "" {
		errors = append(errors, ValidationError{
			Field:   "dataset.table",
			Message: "table is required",
		})
	}

	if c.Dataset.KeyColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "dataset.key_column",
			Message: "key_column is required",
		})
	}

	return errors
}

func (c *Config) validateTransform(name string, tc *TransformConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("transforms.%s", name)

	if !transformTypes[tc.Type] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".type",
			Message: "type must be one of 'pseudonymize', 'suppress', 'perturb', 'generalize', 'perturb_graph'",
		})
		return errors
	}

	switch tc.Type {
	case "pseudonymize":
		if tc.NameColumn == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".name_column",
				Message: "name_column is required",
			})
		}
		if tc.DateColumn == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".date_column",
				Message: "date_column is required",
			})
		}
	case "suppress":
		if tc.Column == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".column",
				Message: "column is required",
			})
		}
	case "perturb":
		if tc.Column == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".column",
				Message: "column is required",
			})
		}
		if tc.Magnitude <= 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".magnitude",
				Message: "magnitude must be positive",
			})
		}
	case "generalize":
		if len(tc.Buckets) == 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".buckets",
				Message: "at least one bucket width must be defined",
			})
		}
		for col, width := range tc.Buckets {
			if width <= 0 {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s.buckets.%s", prefix, col),
					Message: "bucket width must be positive",
				})
			}
		}
		if tc.K < 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".k",
				Message: "k cannot be negative",
			})
		}
		if tc.L < 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".l",
				Message: "l cannot be negative",
			})
		}
	case "perturb_graph":
		if tc.RemoveProbability < 0 || tc.RemoveProbability > 1 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".remove_probability",
				Message: "remove_probability must be between 0 and 1",
			})
		}
		if tc.AddProbability < 0 || tc.AddProbability > 1 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".add_probability",
				Message: "add_probability must be between 0 and 1",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
