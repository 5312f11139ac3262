package styles

import (
	"testing"

	"github.com/Iron-Ham/scoreboard/internal/config"
)

func TestBuiltinThemesMatchConfig(t *testing.T) {
	builtin := BuiltinThemes()
	valid := config.ValidThemes()

	if len(builtin) != len(valid) {
		t.Fatalf("BuiltinThemes() = %v, config.ValidThemes() = %v", builtin, valid)
	}
	for i := range builtin {
		if builtin[i] != valid[i] {
			t.Errorf("theme %d: styles %q, config %q", i, builtin[i], valid[i])
		}
	}
}

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"default", true},
		{"Slate", true},
		{"mono", true},
		{"", true},
		{"dracula", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.name); got != tt.valid {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	if GetPalette(ThemeSlate).Button != SlatePalette().Button {
		t.Error("slate palette not returned for ThemeSlate")
	}
	if GetPalette("MONO").Button != "" {
		t.Error("mono palette should have no button color")
	}
	if GetPalette("unknown").Button != DefaultPalette().Button {
		t.Error("unknown theme should fall back to the default palette")
	}
}

func TestSetActiveTheme(t *testing.T) {
	defer SetActiveTheme(ThemeDefault)

	SetActiveTheme(ThemeSlate)
	if Active().Palette.Button != SlatePalette().Button {
		t.Error("active styles not rebuilt from slate palette")
	}

	SetActiveTheme(ThemeDefault)
	if Active().Palette.Button != DefaultPalette().Button {
		t.Error("active styles not rebuilt from default palette")
	}
}

func TestNewStylesRendersLabels(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			s := NewStyles(GetPalette(ThemeName(name)))
			if out := s.Button.Render("+1"); out == "" {
				t.Error("button rendered empty")
			}
			if out := s.ResetFocused.Render("Reset"); out == "" {
				t.Error("reset rendered empty")
			}
		})
	}
}
