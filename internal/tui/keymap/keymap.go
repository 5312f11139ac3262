// Package keymap maps key presses to scoreboard commands.
// Bindings are declared with bubbles/key so the help bar can be generated
// from the same table that drives input handling.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	CmdNone       Command = ""
	CmdAddHome    Command = "add_home"
	CmdAddAway    Command = "add_away"
	CmdReset      Command = "reset"
	CmdFocusNext  Command = "focus_next"
	CmdFocusPrev  Command = "focus_prev"
	CmdPress      Command = "press"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Action is the result of looking up a key press.
// Value is the increment for CmdAddHome and CmdAddAway and zero otherwise.
type Action struct {
	Command Command
	Value   int
}

// Keymap holds every binding the scoreboard understands.
type Keymap struct {
	Home  [3]key.Binding // +1, +2, +3
	Away  [3]key.Binding // +1, +2, +3
	Reset key.Binding
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// Default returns the default key bindings.
func Default() *Keymap {
	return &Keymap{
		Home: [3]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home +1")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "home +2")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "home +3")),
		},
		Away: [3]key.Binding{
			key.NewBinding(key.WithKeys("8"), key.WithHelp("8", "away +1")),
			key.NewBinding(key.WithKeys("9"), key.WithHelp("9", "away +2")),
			key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "away +3")),
		},
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next control")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev control")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Lookup returns the action bound to msg, or an Action with CmdNone.
func (k *Keymap) Lookup(msg tea.KeyMsg) Action {
	for i := range k.Home {
		if key.Matches(msg, k.Home[i]) {
			return Action{Command: CmdAddHome, Value: i + 1}
		}
	}
	for i := range k.Away {
		if key.Matches(msg, k.Away[i]) {
			return Action{Command: CmdAddAway, Value: i + 1}
		}
	}

	switch {
	case key.Matches(msg, k.Reset):
		return Action{Command: CmdReset}
	case key.Matches(msg, k.Next):
		return Action{Command: CmdFocusNext}
	case key.Matches(msg, k.Prev):
		return Action{Command: CmdFocusPrev}
	case key.Matches(msg, k.Press):
		return Action{Command: CmdPress}
	case key.Matches(msg, k.Help):
		return Action{Command: CmdToggleHelp}
	case key.Matches(msg, k.Quit):
		return Action{Command: CmdQuit}
	}
	return Action{Command: CmdNone}
}

// ShortHelp implements help.KeyMap.
func (k *Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Home[:],
		k.Away[:],
		{k.Next, k.Prev, k.Press},
		{k.Reset, k.Help, k.Quit},
	}
}
