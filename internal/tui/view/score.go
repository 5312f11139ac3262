package view

import (
	"strconv"

	"github.com/Iron-Ham/scoreboard/internal/tui/styles"
)

// RenderScore renders a single score.
func RenderScore(score int) string {
	s := styles.Active()
	return s.ScoreBox.Render(s.ScoreText.Render(strconv.Itoa(score)))
}
