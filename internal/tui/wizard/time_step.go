package wizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// TimeStep collects the requested event time as free text.
type TimeStep struct {
	input *delay.Input
	field textinput.Model
	tf    share.TimeFormatter
	err   string
}

// NewTimeStep creates the step pre-filled with the input's current time of day.
func NewTimeStep(in *delay.Input, tf share.TimeFormatter) *TimeStep {
	t := theme.Current()
	field := textinput.New()
	field.Placeholder = "19:30, 7:30 PM or 2025-12-24T20:00:00-05:00"
	field.Prompt = "⏰ "
	field.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	field.SetWidth(40)
	field.SetValue(in.RequestedTime().Format("15:04"))

	return &TimeStep{input: in, field: field, tf: tf}
}

// Focus focuses the text field.
func (s *TimeStep) Focus() tea.Cmd {
	return s.field.Focus()
}

func (s *TimeStep) SetSize(width, _ int) {
	s.field.SetWidth(width - 10)
}

func (s *TimeStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, keys.Confirm) {
		// Keep the date of the time already chosen; only "now" drives a bare time of day.
		t, err := delay.ParseRequestedTime(s.field.Value(), s.input.RequestedTime())
		if err != nil {
			s.err = err.Error()
			return nil
		}
		s.err = ""
		s.input.SetRequestedTime(t)
		return stepDone
	}

	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.err = ""
	}
	return cmd
}

// preview shows what the current text parses to.
func (s *TimeStep) preview() string {
	t, err := delay.ParseRequestedTime(s.field.Value(), s.input.RequestedTime())
	if err != nil {
		return ""
	}
	return s.tf.Format(t)
}

func (s *TimeStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Subtitle.Render("The time they told you (the real one comes later)"))
	b.WriteString("\n\n")
	b.WriteString(s.field.View())
	b.WriteString("\n")
	if s.err != "" {
		b.WriteString(st.Error.Render(s.err))
	} else if p := s.preview(); p != "" {
		b.WriteString(st.Muted.Render("📅 " + p))
	}
	return b.String()
}

func (s *TimeStep) Hints() []string {
	return []string{"type", "time", "enter", "next", "esc", "back"}
}
