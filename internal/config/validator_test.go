package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func hasField(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string // empty means the config must be valid
	}{
		{"empty home label", func(c *Config) { c.Teams.HomeLabel = "  " }, "teams.home_label"},
		{"empty away label", func(c *Config) { c.Teams.AwayLabel = "" }, "teams.away_label"},
		{"long label", func(c *Config) { c.Teams.HomeLabel = strings.Repeat("x", MaxLabelLength+1) }, "teams.home_label"},
		{"label at limit", func(c *Config) { c.Teams.HomeLabel = strings.Repeat("x", MaxLabelLength) }, ""},
		{"duplicate labels", func(c *Config) { c.Teams.AwayLabel = "home" }, "teams.away_label"},
		{"custom labels", func(c *Config) { c.Teams.HomeLabel, c.Teams.AwayLabel = "Lions", "Tigers" }, ""},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "neon" }, "tui.theme"},
		{"theme case insensitive", func(c *Config) { c.TUI.Theme = "Slate" }, ""},
		{"empty theme uses default", func(c *Config) { c.TUI.Theme = "" }, ""},
		{"empty listen", func(c *Config) { c.Server.Listen = "" }, "server.listen"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeoutSeconds = 0 }, "server.read_timeout_seconds"},
		{"huge write timeout", func(c *Config) { c.Server.WriteTimeoutSeconds = 3600 }, "server.write_timeout_seconds"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"upper case log level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"negative log size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, "logging.max_size_mb"},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 4096 }, "logging.max_size_mb"},
		{"rotation disabled", func(c *Config) { c.Logging.MaxSizeMB = 0 }, ""},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -2 }, "logging.max_backups"},
		{"no backups", func(c *Config) { c.Logging.MaxBackups = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !hasField(errs, tt.wantField) {
				t.Errorf("expected error for %s, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Teams.HomeLabel = ""
	cfg.TUI.Theme = "neon"
	cfg.Server.Listen = ""

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidLogLevels(t *testing.T) {
	levels := ValidLogLevels()
	expected := []string{"debug", "info", "warn", "error"}
	if len(levels) != len(expected) {
		t.Fatalf("ValidLogLevels() length = %d, want %d", len(levels), len(expected))
	}
	for i, level := range expected {
		if levels[i] != level {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, levels[i], level)
		}
	}
}
