package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// appFs is the filesystem config files are written to. Tests swap in an
// in-memory filesystem.
var appFs = afero.NewOsFs()

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify scoreboard configuration",
	Long: `View or modify scoreboard configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  scoreboard config set teams.home_label Lions
  scoreboard config set tui.theme slate
  scoreboard config set server.listen 127.0.0.1:9000

Valid keys:
  teams.home_label              - Caption of the left panel
  teams.away_label              - Caption of the right panel
  tui.theme                     - Options: default, slate, mono
  tui.alt_screen                - Use the alternate screen (true/false)
  tui.show_help                 - Show the key help bar (true/false)
  tui.watch_config              - Re-apply labels and theme on change (true/false)
  server.listen                 - Address for 'scoreboard serve'
  server.metrics                - Expose /metrics (true/false)
  server.read_timeout_seconds   - HTTP read timeout
  server.write_timeout_seconds  - HTTP write timeout
  logging.enabled               - Write logs (true/false)
  logging.level                 - Options: debug, info, warn, error
  logging.dir                   - Directory for the terminal board's log file
  logging.max_size_mb           - Rotate the log file at this size (0 disables)
  logging.max_backups           - Rotated log files to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/scoreboard/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps each key accepted by 'config set' to its value type.
var settableKeys = map[string]string{
	"teams.home_label":             "string",
	"teams.away_label":             "string",
	"tui.theme":                    "string",
	"tui.alt_screen":               "bool",
	"tui.show_help":                "bool",
	"tui.watch_config":             "bool",
	"server.listen":                "string",
	"server.metrics":               "bool",
	"server.read_timeout_seconds":  "int",
	"server.write_timeout_seconds": "int",
	"logging.enabled":              "bool",
	"logging.level":                "string",
	"logging.dir":                  "string",
	"logging.max_size_mb":          "int",
	"logging.max_backups":          "int",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	// Show where config is being read from
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'scoreboard config set --help' to see valid keys", key)
	}

	typedValue, err := parseConfigValue(key, keyType, value)
	if err != nil {
		return err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := setConfigValue(appFs, configFile, key, typedValue); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

func parseConfigValue(key, keyType, value string) (any, error) {
	switch keyType {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

// setConfigValue merges key=value into the YAML file at path and validates
// the result before writing it.
func setConfigValue(fs afero.Fs, path, key string, value any) error {
	v := viper.New()
	v.SetFs(fs)
	config.SetDefaultsOn(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if exists, _ := afero.Exists(fs, path); exists {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.Set(key, value)
	if _, err := config.LoadFrom(v); err != nil {
		return fmt.Errorf("refusing to write invalid configuration: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// defaultConfigContent is the commented file written by 'config init'.
const defaultConfigContent = `# Scoreboard Configuration
# Every key can also be set with a SCOREBOARD_ environment variable,
# e.g. SCOREBOARD_TEAMS_HOME_LABEL=Lions

teams:
  # Panel captions (at most 24 characters, must differ)
  home_label: Home
  away_label: Away

tui:
  # Color theme
  # Options: default, slate, mono
  theme: default
  # Draw the board in the terminal's alternate screen
  alt_screen: true
  # Show the key help bar under the board
  show_help: true
  # Re-apply labels and theme when this file changes
  watch_config: true

server:
  # Address for 'scoreboard serve'
  listen: ":8080"
  # Expose Prometheus metrics on /metrics
  metrics: true
  # HTTP timeouts in seconds (1-300)
  read_timeout_seconds: 10
  write_timeout_seconds: 10

logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Directory for the terminal board's log file (empty = <config dir>/logs)
  # 'scoreboard serve' always logs to stderr
  dir: ""
  # Rotate the log file at this size in megabytes (0 disables rotation)
  max_size_mb: 10
  # Rotated files to keep; 'scoreboard logs' reads them too
  max_backups: 3
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	if err := writeDefaultConfig(appFs, configFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize the scoreboard.")
	return nil
}

func writeDefaultConfig(fs afero.Fs, path string) error {
	// Check if config file already exists
	if exists, err := afero.Exists(fs, path); err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	} else if exists {
		return fmt.Errorf("config file already exists at %s\nUse 'scoreboard config set' to modify values", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: SCOREBOARD_* (e.g., SCOREBOARD_TUI_THEME)")
	return nil
}
