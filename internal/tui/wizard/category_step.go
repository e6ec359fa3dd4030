package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// CategoryStep picks the event category. Moving the cursor updates the input immediately.
type CategoryStep struct {
	input      *delay.Input
	categories []delay.Category
	cursor     int
}

// NewCategoryStep creates the list with the cursor on the input's category.
func NewCategoryStep(in *delay.Input) *CategoryStep {
	s := &CategoryStep{input: in, categories: delay.Categories()}
	for i, c := range s.categories {
		if c == in.Category() {
			s.cursor = i
		}
	}
	return s
}

func (s *CategoryStep) SetSize(int, int) {}

func (s *CategoryStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(s.categories)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, keys.Confirm):
		return stepDone
	default:
		return nil
	}
	s.input.SetCategory(s.categories[s.cursor])
	return nil
}

func (s *CategoryStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	for i, c := range s.categories {
		label := fmt.Sprintf("%s  %s", c.Emoji(), c.Label())
		if i == s.cursor {
			b.WriteString(st.OptionSelected.Render("› " + label))
		} else {
			b.WriteString(st.Option.Render(label))
		}
		b.WriteString("\n")
	}

	cur := s.categories[s.cursor]
	kind := "formal: dress up, they'll take their time"
	switch {
	case cur.IsShopping():
		kind = "informal: quick in, quick out (supposedly)"
	case cur.IsInformal():
		kind = "informal"
	}
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(kind))
	return b.String()
}

func (s *CategoryStep) Hints() []string {
	return []string{"↑↓", "choose", "enter", "next", "esc", "back"}
}
