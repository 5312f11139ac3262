package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Two-team scoreboard for the terminal and the browser",
	Long: `Scoreboard keeps score for two teams, Home and Away.

Each team can be scored +1, +2 or +3, and a single reset returns both
scores to zero. Run without a subcommand to open the terminal board, or
use 'scoreboard serve' for a browser board that needs no JavaScript.`,
	Args:          cobra.NoArgs,
	RunE:          runStart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/scoreboard/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	if err := readConfig(viper.GetViper(), viper.GetString("config")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}
}

// readConfig loads defaults, the config file and SCOREBOARD_* variables
// into v. With no explicit file, a missing config.yaml is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	config.SetDefaultsOn(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
		v.AddConfigPath(".")
	}

	// teams.home_label is read from SCOREBOARD_TEAMS_HOME_LABEL.
	v.SetEnvPrefix("SCOREBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (cfgFile != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
