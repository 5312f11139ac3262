package view

import (
	"github.com/Iron-Ham/scoreboard/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Increments are the values bound to a panel's three controls, in order.
var Increments = []int{1, 2, 3}

// TeamPanel composes a team label, its score and three increment controls.
type TeamPanel struct {
	Label   string
	Score   int
	buttons []Button
}

// NewTeamPanel builds a panel whose controls call onScore with their
// bound value when pressed.
func NewTeamPanel(label string, score int, onScore func(int)) TeamPanel {
	buttons := make([]Button, 0, len(Increments))
	for _, v := range Increments {
		buttons = append(buttons, NewIncrementButton(v, func() {
			if onScore != nil {
				onScore(v)
			}
		}))
	}
	return TeamPanel{Label: label, Score: score, buttons: buttons}
}

// Buttons returns the panel's controls in display order.
func (p TeamPanel) Buttons() []Button {
	return p.buttons
}

// Render draws the panel. focus is the index of the focused control, or
// -1 when none of this panel's controls has focus.
func (p TeamPanel) Render(focus int) string {
	s := styles.Active()

	rendered := make([]string, 0, len(p.buttons)*2)
	for i, b := range p.buttons {
		if i > 0 {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, b.Render(i == focus))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		s.TeamLabel.Render(p.Label),
		RenderScore(p.Score),
		lipgloss.JoinHorizontal(lipgloss.Center, rendered...),
	)
	return s.Panel.Render(body)
}
