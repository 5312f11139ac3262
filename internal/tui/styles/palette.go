package styles

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Navy board with blue controls
	ThemeSlate   ThemeName = "slate"   // Gray board with amber controls
	ThemeMono    ThemeName = "mono"    // No color, for limited terminals
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeSlate), string(ThemeMono)}
}

// IsValidTheme reports whether name is a built-in theme (case-insensitive).
// The empty string selects the default theme and is valid.
func IsValidTheme(name string) bool {
	return name == "" || slices.Contains(BuiltinThemes(), strings.ToLower(name))
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Board background
	Background lipgloss.Color
	// Team panel background
	Panel lipgloss.Color
	// Score box background
	ScoreBox lipgloss.Color
	// Primary text
	Text lipgloss.Color
	// De-emphasized text (help bar, hints)
	Muted lipgloss.Color
	// Control fill
	Button lipgloss.Color
	// Control fill when focused
	ButtonFocused lipgloss.Color
	// Border around panels
	Border lipgloss.Color
	// Reset control fill
	Reset lipgloss.Color
}

// DefaultPalette returns the navy board palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Background:    lipgloss.Color("#0F172A"), // slate-900
		Panel:         lipgloss.Color("#1E293B"), // slate-800
		ScoreBox:      lipgloss.Color("#0F172A"),
		Text:          lipgloss.Color("#F9FAFB"),
		Muted:         lipgloss.Color("#9CA3AF"),
		Button:        lipgloss.Color("#3B82F6"), // blue-500
		ButtonFocused: lipgloss.Color("#2563EB"), // blue-600
		Border:        lipgloss.Color("#6B7280"),
		Reset:         lipgloss.Color("#3B82F6"),
	}
}

// SlatePalette returns a gray board with amber controls.
func SlatePalette() *ColorPalette {
	return &ColorPalette{
		Background:    lipgloss.Color("#1F2937"),
		Panel:         lipgloss.Color("#374151"),
		ScoreBox:      lipgloss.Color("#111827"),
		Text:          lipgloss.Color("#F3F4F6"),
		Muted:         lipgloss.Color("#D1D5DB"),
		Button:        lipgloss.Color("#B45309"), // amber-700
		ButtonFocused: lipgloss.Color("#D97706"), // amber-600
		Border:        lipgloss.Color("#9CA3AF"),
		Reset:         lipgloss.Color("#B91C1C"),
	}
}

// MonoPalette returns an empty palette: every style falls back to the
// terminal's own colors and focus is shown with reverse video.
func MonoPalette() *ColorPalette {
	return &ColorPalette{}
}

// GetPalette returns the palette for name, or the default palette when the
// name is unknown.
func GetPalette(name ThemeName) *ColorPalette {
	switch ThemeName(strings.ToLower(string(name))) {
	case ThemeSlate:
		return SlatePalette()
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
