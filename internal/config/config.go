package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/scoreboard/internal/logging"
)

// Config represents the complete scoreboard configuration
type Config struct {
	Teams   TeamsConfig   `mapstructure:"teams" yaml:"teams"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// TeamsConfig controls how the two sides are labelled
type TeamsConfig struct {
	// HomeLabel is the caption of the left panel (default: "Home")
	HomeLabel string `mapstructure:"home_label" yaml:"home_label"`
	// AwayLabel is the caption of the right panel (default: "Away")
	AwayLabel string `mapstructure:"away_label" yaml:"away_label"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the built-in color palette (default: "default")
	// Options: "default", "slate", "mono"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// AltScreen runs the UI in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	// ShowHelp shows the key help bar under the board (default: true)
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
	// WatchConfig re-applies labels and theme when the config file changes (default: true)
	WatchConfig bool `mapstructure:"watch_config" yaml:"watch_config"`
}

// ServerConfig controls the HTML surface started by "scoreboard serve"
type ServerConfig struct {
	// Listen is the TCP address to bind (default: ":8080")
	Listen string `mapstructure:"listen" yaml:"listen"`
	// Metrics exposes Prometheus metrics on /metrics (default: true)
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`
	// ReadTimeoutSeconds bounds request reads (default: 10)
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	// WriteTimeoutSeconds bounds response writes (default: 10)
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Enabled controls whether logs are written at all (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where the terminal UI writes scoreboard.log.
	// Empty means <config dir>/logs. The HTTP surface always logs to stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB rotates scoreboard.log at this size; 0 disables rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is how many rotated files are kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Teams: TeamsConfig{
			HomeLabel: "Home",
			AwayLabel: "Away",
		},
		TUI: TUIConfig{
			Theme:       "default",
			AltScreen:   true,
			ShowHelp:    true,
			WatchConfig: true,
		},
		Server: ServerConfig{
			Listen:              ":8080",
			Metrics:             true,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// ReadTimeout returns the read timeout as a time.Duration
func (c *ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a time.Duration
func (c *ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ResolveDir returns the directory the terminal UI should log into.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return expandHome(c.Dir)
	}
	return filepath.Join(ConfigDir(), "logs")
}

// Rotation returns the log rotation policy for the terminal UI's log file.
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{MaxSizeMB: c.MaxSizeMB, MaxBackups: c.MaxBackups}
}

// LogFile returns the terminal UI's log file path.
func (c *LoggingConfig) LogFile() string {
	return filepath.Join(c.ResolveDir(), logging.FileName)
}

func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SetDefaultsOn registers default values with v
func SetDefaultsOn(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("teams.home_label", defaults.Teams.HomeLabel)
	v.SetDefault("teams.away_label", defaults.Teams.AwayLabel)

	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	v.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	v.SetDefault("tui.watch_config", defaults.TUI.WatchConfig)

	v.SetDefault("server.listen", defaults.Server.Listen)
	v.SetDefault("server.metrics", defaults.Server.Metrics)
	v.SetDefault("server.read_timeout_seconds", defaults.Server.ReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", defaults.Server.WriteTimeoutSeconds)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from the global viper instance and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v into a Config struct and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded values do not validate.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scoreboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scoreboard"
	}
	return filepath.Join(home, ".config", "scoreboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the names of the built-in palettes.
// Keep in sync with styles.BuiltinThemes (defined there to avoid an import cycle).
func ValidThemes() []string {
	return []string{"default", "slate", "mono"}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	for i, level := range levels {
		levels[i] = strings.ToLower(level)
	}
	return levels
}
