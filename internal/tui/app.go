// Package tui runs the scoreboard as a Bubble Tea terminal application.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	board   *scoreboard.Board
	cfg     *config.Config
	logger  *logging.Logger
	watcher *viper.Viper
}

// New creates a new TUI application for board.
func New(board *scoreboard.Board, cfg *config.Config, logger *logging.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(board, cfg, logger),
		board:  board,
		cfg:    cfg,
		logger: logger.WithComponent("tui"),
	}
}

// WatchConfig re-applies configuration from v whenever its config file
// changes. Call before Run.
func (a *App) WatchConfig(v *viper.Viper) {
	a.watcher = v
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	opts := []tea.ProgramOption{}
	if a.cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	subs := a.subscribe(a.board.Bus())

	if a.watcher != nil {
		watchConfig(a.watcher, a.board.Bus(), a.logger, func(cfg *config.Config) {
			a.program.Send(configReloadedMsg{cfg: cfg})
		})
	}

	a.logger.Info("tui started", "board_id", a.board.ID())
	_, err := a.program.Run()

	for _, id := range subs {
		a.board.Bus().Unsubscribe(id)
	}
	signal.Stop(sigChan)
	close(sigChan)

	a.logger.Info("tui stopped", "home", a.board.Score(scoreboard.Home), "away", a.board.Score(scoreboard.Away))
	return err
}

// subscribe wires the board's events to the running program. Handlers run
// on the publishing goroutine, which may be the program's own event loop,
// so the message is delivered from a new goroutine to avoid blocking it.
func (a *App) subscribe(bus *event.Bus) []string {
	refresh := func(event.Event) {
		go a.program.Send(scoresChangedMsg{})
	}

	bus.OnPanic(func(eventType string, recovered any, stack []byte) {
		a.logger.Error("event handler panicked",
			"event_type", eventType, "panic", recovered, "stack", string(stack))
	})

	return []string{
		bus.Subscribe(event.TypeScoreChanged, refresh),
		bus.Subscribe(event.TypeScoreReset, refresh),
		bus.SubscribeAll(func(e event.Event) {
			a.logger.Debug("event", "event_type", e.EventType())
		}),
	}
}
