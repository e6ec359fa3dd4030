package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// FamilySelectedMsg is sent when an available family is chosen.
type FamilySelectedMsg struct {
	Family delay.Family
}

// FamilyStep lists the cultural families. Locked ones are shown but cannot be chosen.
type FamilyStep struct {
	families []delay.Family
	cursor   int
	notice   string
	width    int
}

// NewFamilyStep creates the selector with the cursor on selected.
func NewFamilyStep(selected delay.Family) *FamilyStep {
	fs := &FamilyStep{families: delay.Families(), width: 60}
	for i, f := range fs.families {
		if f == selected {
			fs.cursor = i
		}
	}
	return fs
}

func (s *FamilyStep) SetSize(width, _ int) { s.width = width }

// Selected returns the family under the cursor.
func (s *FamilyStep) Selected() delay.Family { return s.families[s.cursor] }

func (s *FamilyStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
		s.notice = ""
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(s.families)-1 {
			s.cursor++
		}
		s.notice = ""
	case key.Matches(keyMsg, keys.Confirm):
		f := s.Selected()
		if !f.Available() {
			s.notice = fmt.Sprintf("🔒 %s time is coming soon", f.Label())
			return nil
		}
		return func() tea.Msg { return FamilySelectedMsg{Family: f} }
	}
	return nil
}

func (s *FamilyStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Subtitle.Render("Whose clock are we running on?"))
	b.WriteString("\n\n")
	for i, f := range s.families {
		label := fmt.Sprintf("%s  %s", f.Flag(), f.Label())
		switch {
		case !f.Available():
			label += "  🔒"
			if i == s.cursor {
				b.WriteString(st.OptionSelected.Render("› " + label))
			} else {
				b.WriteString(st.OptionLocked.Render(label))
			}
		case i == s.cursor:
			b.WriteString(st.OptionSelected.Render("› " + label))
		default:
			b.WriteString(st.Option.Render(label))
		}
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(st.Warning.Render(s.notice))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *FamilyStep) Hints() []string {
	return []string{"↑↓", "navigate", "enter", "select", "esc", "quit"}
}
