package tui

import "github.com/Iron-Ham/scoreboard/internal/config"

// scoresChangedMsg tells the model the board changed outside of Update.
// It carries no scores: the model re-reads the board so that refreshes
// delivered out of order can never show a stale pair.
type scoresChangedMsg struct{}

// configReloadedMsg carries a freshly loaded and validated configuration.
type configReloadedMsg struct {
	cfg *config.Config
}
