package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard focus.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when the bar is not focused
	width   int
}

// NewButtonBar creates a new unfocused button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetButtons replaces the buttons and drops focus.
func (b *ButtonBar) SetButtons(buttons []Button) {
	b.buttons = buttons
	b.focus = -1
}

// Focused reports whether any button has focus.
func (b *ButtonBar) Focused() bool { return b.focus >= 0 }

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.focus = -1
	b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.focus = len(b.buttons)
	b.FocusPrev()
}

// FocusNext moves focus to the next enabled button, wrapping around.
func (b *ButtonBar) FocusNext() {
	b.move(1)
}

// FocusPrev moves focus to the previous enabled button, wrapping around.
func (b *ButtonBar) FocusPrev() {
	b.move(-1)
}

func (b *ButtonBar) move(dir int) {
	n := len(b.buttons)
	if n == 0 {
		b.focus = -1
		return
	}
	idx := b.focus
	for range n {
		idx = ((idx+dir)%n + n) % n
		if b.buttons[idx].State != ButtonDisabled {
			b.focus = idx
			return
		}
	}
	b.focus = -1
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// FocusedButton returns the label of the focused button, or "" when unfocused.
func (b *ButtonBar) FocusedButton() string {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return ""
	}
	return b.buttons[b.focus].Label
}

// Render renders the button bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	s := theme.Current().S()

	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focus {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default: // ButtonNormal
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates standard Back/Next button set.
// nextLabel is e.g. "Next" or "Calculate".
func CreateBackNextButtons(backEnabled bool, nextLabel string) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	return []Button{
		{Label: "← Back", State: backState},
		{Label: nextLabel, State: ButtonNormal},
	}
}

// Result screen button labels.
const (
	buttonStartOver = "Start Over"
	buttonShare     = "Share Result"
)

// CreateResultButtons creates the Start Over/Share button set shown with results.
func CreateResultButtons(shareEnabled bool) []Button {
	shareState := ButtonNormal
	if !shareEnabled {
		shareState = ButtonDisabled
	}
	return []Button{
		{Label: buttonStartOver, State: ButtonNormal},
		{Label: buttonShare, State: shareState},
	}
}
