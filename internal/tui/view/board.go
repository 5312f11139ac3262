package view

import (
	"github.com/Iron-Ham/scoreboard/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Title is the heading drawn above the panels.
const Title = "ScoreBoard"

// Focus indices. Home controls come first, then Away, then Reset.
const (
	FocusHomeFirst = 0
	FocusAwayFirst = 3
	FocusReset     = 6
	ControlCount   = 7
)

// BoardView is the whole scoreboard: two panels, the VS marker and the
// reset control.
type BoardView struct {
	Home  TeamPanel
	Away  TeamPanel
	Reset Button
	// Focus is the index of the focused control (0..ControlCount-1).
	Focus int
	// Help is rendered under the board when non-empty.
	Help string
	// Width, when positive, centers the board horizontally.
	Width int
}

// Controls returns every control in focus order.
func (v BoardView) Controls() []Button {
	controls := make([]Button, 0, ControlCount)
	controls = append(controls, v.Home.Buttons()...)
	controls = append(controls, v.Away.Buttons()...)
	controls = append(controls, v.Reset)
	return controls
}

// Render draws the board.
func (v BoardView) Render() string {
	s := styles.Active()

	homeFocus, awayFocus := -1, -1
	switch {
	case v.Focus >= FocusHomeFirst && v.Focus < FocusAwayFirst:
		homeFocus = v.Focus - FocusHomeFirst
	case v.Focus >= FocusAwayFirst && v.Focus < FocusReset:
		awayFocus = v.Focus - FocusAwayFirst
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Center,
		v.Home.Render(homeFocus),
		s.Versus.Render("VS"),
		v.Away.Render(awayFocus),
	)

	board := s.Board.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(Title),
		panels,
		"",
		v.Reset.Render(v.Focus == FocusReset),
	))

	if v.Help != "" {
		board = lipgloss.JoinVertical(lipgloss.Center, board, s.Help.Render(v.Help))
	}
	if v.Width > 0 {
		board = lipgloss.PlaceHorizontal(v.Width, lipgloss.Center, board)
	}
	return board
}
