package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

type counterKind int

const (
	counterTotal counterKind = iota
	counterColombians
)

// CounterStep adjusts one participant count with +/- keys.
type CounterStep struct {
	input *delay.Input
	kind  counterKind
}

// NewTotalStep counts everyone attending.
func NewTotalStep(in *delay.Input) *CounterStep {
	return &CounterStep{input: in, kind: counterTotal}
}

// NewColombiansStep counts the Colombians among them.
func NewColombiansStep(in *delay.Input) *CounterStep {
	return &CounterStep{input: in, kind: counterColombians}
}

func (s *CounterStep) SetSize(int, int) {}

func (s *CounterStep) value() int {
	if s.kind == counterTotal {
		return s.input.TotalParticipants()
	}
	return s.input.ColombianParticipants()
}

func (s *CounterStep) limit() int {
	if s.kind == counterTotal {
		return delay.MaxParticipants
	}
	return s.input.TotalParticipants()
}

func (s *CounterStep) adjust(delta int) {
	if s.kind == counterTotal {
		s.input.AdjustTotal(delta)
	} else {
		s.input.AdjustColombians(delta)
	}
}

func (s *CounterStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Inc), key.Matches(keyMsg, keys.Up):
		s.adjust(1)
	case key.Matches(keyMsg, keys.Dec), key.Matches(keyMsg, keys.Down):
		s.adjust(-1)
	case key.Matches(keyMsg, keys.Confirm):
		return stepDone
	}
	return nil
}

// displayValue shows the cap as "20+".
func displayValue(n int) string {
	if n >= delay.MaxParticipants {
		return fmt.Sprintf("%d+", delay.MaxParticipants)
	}
	return strconv.Itoa(n)
}

func (s *CounterStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	v := s.value()
	b.WriteString(st.Muted.Render("  −  "))
	b.WriteString(st.Counter.Render(displayValue(v)))
	b.WriteString(st.Muted.Render("  +  "))
	b.WriteString("\n\n")

	if s.kind == counterTotal {
		b.WriteString(st.Subtitle.Render("people"))
		if v >= delay.MaxParticipants {
			b.WriteString("\n")
			b.WriteString(st.Warning.Render("Maximum 20 people"))
		}
		return b.String()
	}

	b.WriteString(st.Subtitle.Render(fmt.Sprintf("out of %d", s.input.TotalParticipants())))
	if v > 0 {
		b.WriteString("\n")
		b.WriteString(st.Success.Render("😅 Ah, now we're getting somewhere!"))
	}
	if v >= s.limit() && v > 0 {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("Everyone is Colombian. Bring snacks."))
	}
	return b.String()
}

func (s *CounterStep) Hints() []string {
	return []string{"←→", "adjust", "enter", "next", "esc", "back"}
}
