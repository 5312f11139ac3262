package view

import (
	"strconv"

	"github.com/Iron-Ham/scoreboard/internal/tui/styles"
)

// Button is a pressable control. Value is the bound increment, or zero
// for a control with a text caption such as the reset control.
type Button struct {
	Value   int
	Caption string
	OnPress func()
}

// NewIncrementButton returns a Button captioned "+value".
func NewIncrementButton(value int, onPress func()) Button {
	return Button{Value: value, OnPress: onPress}
}

// Label returns the caption shown on the control.
func (b Button) Label() string {
	if b.Caption != "" {
		return b.Caption
	}
	return "+" + strconv.Itoa(b.Value)
}

// Press activates the control. A Button without a callback does nothing.
func (b Button) Press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

// Render draws the control, highlighted when focused.
func (b Button) Render(focused bool) string {
	s := styles.Active()
	style := s.Button
	if focused {
		style = s.ButtonFocused
	}
	if b.Value == 0 {
		style = s.Reset
		if focused {
			style = s.ResetFocused
		}
	}
	return style.Render(b.Label())
}
