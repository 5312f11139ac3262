package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "teams.home_label")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// MaxLabelLength bounds team labels so both panels fit an 80-column terminal.
const MaxLabelLength = 24

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTeams()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTeams() []ValidationError {
	var errors []ValidationError

	labels := []struct {
		field string
		value string
	}{
		{"teams.home_label", c.Teams.HomeLabel},
		{"teams.away_label", c.Teams.AwayLabel},
	}
	for _, l := range labels {
		trimmed := strings.TrimSpace(l.value)
		if trimmed == "" {
			errors = append(errors, ValidationError{
				Field:   l.field,
				Value:   l.value,
				Message: "must not be empty",
			})
			continue
		}
		if len([]rune(trimmed)) > MaxLabelLength {
			errors = append(errors, ValidationError{
				Field:   l.field,
				Value:   l.value,
				Message: fmt.Sprintf("exceeds maximum of %d characters", MaxLabelLength),
			})
		}
	}

	if strings.TrimSpace(c.Teams.HomeLabel) != "" &&
		strings.EqualFold(strings.TrimSpace(c.Teams.HomeLabel), strings.TrimSpace(c.Teams.AwayLabel)) {
		errors = append(errors, ValidationError{
			Field:   "teams.away_label",
			Value:   c.Teams.AwayLabel,
			Message: "must differ from teams.home_label",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), strings.ToLower(c.TUI.Theme)) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Server.Listen) == "" {
		errors = append(errors, ValidationError{
			Field:   "server.listen",
			Value:   c.Server.Listen,
			Message: "must not be empty",
		})
	}

	const maxTimeoutSeconds = 300
	timeouts := []struct {
		field string
		value int
	}{
		{"server.read_timeout_seconds", c.Server.ReadTimeoutSeconds},
		{"server.write_timeout_seconds", c.Server.WriteTimeoutSeconds},
	}
	for _, to := range timeouts {
		if to.value <= 0 {
			errors = append(errors, ValidationError{
				Field:   to.field,
				Value:   to.value,
				Message: "must be positive",
			})
		} else if to.value > maxTimeoutSeconds {
			errors = append(errors, ValidationError{
				Field:   to.field,
				Value:   to.value,
				Message: fmt.Sprintf("exceeds maximum of %d seconds", maxTimeoutSeconds),
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("must be between 0 and %d", maxLogSizeMB),
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must not be negative",
		})
	}

	return errors
}

const maxLogSizeMB = 1024
