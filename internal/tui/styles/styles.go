package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles built from a color palette.
// Regenerate with NewStyles when the theme changes.
type Styles struct {
	Palette *ColorPalette

	Board         lipgloss.Style
	Title         lipgloss.Style
	Panel         lipgloss.Style
	TeamLabel     lipgloss.Style
	ScoreBox      lipgloss.Style
	ScoreText     lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Reset         lipgloss.Style
	ResetFocused  lipgloss.Style
	Versus        lipgloss.Style
	Help          lipgloss.Style
	Muted         lipgloss.Style
}

// NewStyles builds all styles from p.
func NewStyles(p *ColorPalette) *Styles {
	mono := p.Button == ""

	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Button).
		Padding(0, 2)
	focused := button.
		Background(p.ButtonFocused).
		Underline(true)
	if mono {
		button = button.Border(lipgloss.NormalBorder()).Padding(0, 1)
		focused = button.Reverse(true)
	}

	reset := button.Background(p.Reset)
	resetFocused := focused.Background(p.ButtonFocused)
	if mono {
		reset = button
		resetFocused = focused
	}

	return &Styles{
		Palette: p,

		Board: lipgloss.NewStyle().
			Background(p.Background).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 4),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			MarginBottom(1),

		Panel: lipgloss.NewStyle().
			Background(p.Panel).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 3).
			Align(lipgloss.Center),

		TeamLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		ScoreBox: lipgloss.NewStyle().
			Background(p.ScoreBox).
			Padding(1, 6).
			Margin(1, 0).
			Align(lipgloss.Center),

		ScoreText: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Button:        button,
		ButtonFocused: focused,
		Reset:         reset,
		ResetFocused:  resetFocused,

		Versus: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Padding(0, 3),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		Muted: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

var active = NewStyles(DefaultPalette())

// SetActiveTheme rebuilds the active styles from the named palette.
// Not thread-safe: call it from the UI event loop only.
func SetActiveTheme(name ThemeName) {
	active = NewStyles(GetPalette(name))
}

// Active returns the currently active styles.
func Active() *Styles {
	return active
}
