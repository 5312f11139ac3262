package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	"github.com/Iron-Ham/scoreboard/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the terminal board needs an interactive terminal; use 'scoreboard serve' for the browser board")

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the terminal scoreboard",
	Long: `Open the terminal scoreboard.

Keys: 1/2/3 score Home, 8/9/0 score Away, r resets both scores.
Tab and the arrow keys move between controls, enter presses the focused
one, ? shows every key and q quits. Scores live only as long as the
board is open.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newTUILogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	board := scoreboard.New(
		scoreboard.WithBus(event.NewBus()),
		scoreboard.WithLogger(logger),
	)

	app := tui.New(board, cfg, logger)
	if cfg.TUI.WatchConfig {
		app.WatchConfig(viper.GetViper())
	}
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// newTUILogger returns a file logger. The terminal belongs to the board,
// so the TUI never logs to stderr.
func newTUILogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewRotatingLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level, cfg.Logging.Rotation())
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}
