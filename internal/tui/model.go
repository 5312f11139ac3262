package tui

import (
	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	"github.com/Iron-Ham/scoreboard/internal/tui/keymap"
	"github.com/Iron-Ham/scoreboard/internal/tui/styles"
	"github.com/Iron-Ham/scoreboard/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the scoreboard. The board owns the
// scores; the model only caches the last snapshot it rendered.
type Model struct {
	board  *scoreboard.Board
	keymap *keymap.Keymap
	help   help.Model
	logger *logging.Logger

	homeLabel string
	awayLabel string
	showHelp  bool

	scores scoreboard.Snapshot
	focus  int
	width  int
	height int
}

// NewModel creates a model bound to board. A nil cfg uses the defaults.
func NewModel(board *scoreboard.Board, cfg *config.Config, logger *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	m := Model{
		board:  board,
		keymap: keymap.Default(),
		help:   help.New(),
		logger: logger.WithComponent("tui"),
		scores: board.Snapshot(),
	}
	m.applyConfig(cfg)
	return m
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.homeLabel = cfg.Teams.HomeLabel
	m.awayLabel = cfg.Teams.AwayLabel
	m.showHelp = cfg.TUI.ShowHelp
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scoresChangedMsg:
		m.scores = m.board.Snapshot()
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		m.logger.Info("config applied",
			"home_label", m.homeLabel, "away_label", m.awayLabel, "theme", msg.cfg.TUI.Theme)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Lookup(msg)

	switch action.Command {
	case keymap.CmdAddHome:
		m.press(view.FocusHomeFirst + action.Value - 1)
	case keymap.CmdAddAway:
		m.press(view.FocusAwayFirst + action.Value - 1)
	case keymap.CmdReset:
		m.press(view.FocusReset)
	case keymap.CmdPress:
		m.press(m.focus)
	case keymap.CmdFocusNext:
		m.focus = (m.focus + 1) % view.ControlCount
	case keymap.CmdFocusPrev:
		m.focus = (m.focus + view.ControlCount - 1) % view.ControlCount
	case keymap.CmdToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.CmdQuit:
		m.logger.Info("quit requested", "home", m.scores.Home, "away", m.scores.Away)
		return m, tea.Quit
	}

	return m, nil
}

// press activates the control at index and re-reads the board. Every
// activation goes through the view's controls so keys and focus+enter
// share one path into the container.
func (m *Model) press(index int) {
	controls := m.boardView().Controls()
	if index < 0 || index >= len(controls) {
		return
	}
	controls[index].Press()
	m.scores = m.board.Snapshot()
}

func (m Model) boardView() view.BoardView {
	board := m.board
	return view.BoardView{
		Home: view.NewTeamPanel(m.homeLabel, m.scores.Home, func(v int) {
			board.AddHomeScore(scoreboard.Increment(v))
		}),
		Away: view.NewTeamPanel(m.awayLabel, m.scores.Away, func(v int) {
			board.AddAwayScore(scoreboard.Increment(v))
		}),
		Reset: view.Button{Caption: "Reset", OnPress: func() {
			board.ResetScore()
		}},
		Focus: m.focus,
		Width: m.width,
	}
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.boardView()
	if m.showHelp {
		v.Help = m.help.View(m.keymap)
	}
	return v.Render()
}

// Scores returns the snapshot the model last rendered.
func (m Model) Scores() scoreboard.Snapshot {
	return m.scores
}

// Focus returns the index of the focused control.
func (m Model) Focus() int {
	return m.focus
}
