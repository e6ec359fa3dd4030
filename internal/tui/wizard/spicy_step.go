package wizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// SpicyStep toggles the spicy factor. Confirming here calculates the result.
type SpicyStep struct {
	input *delay.Input
}

// NewSpicyStep creates the toggle.
func NewSpicyStep(in *delay.Input) *SpicyStep {
	return &SpicyStep{input: in}
}

func (s *SpicyStep) SetSize(int, int) {}

func (s *SpicyStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case keyMsg.String() == "y":
		s.input.SetSpicy(true)
	case keyMsg.String() == "n":
		s.input.SetSpicy(false)
	case key.Matches(keyMsg, keys.Toggle),
		key.Matches(keyMsg, keys.Inc),
		key.Matches(keyMsg, keys.Dec):
		s.input.SetSpicy(!s.input.Spicy())
	case key.Matches(keyMsg, keys.Confirm):
		return stepDone
	}
	return nil
}

func (s *SpicyStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Subtitle.Render("Are there spicy Colombian women getting ready?"))
	b.WriteString("\n\n")

	no, yes := st.Option.Render("No, all calm"), st.Option.Render("🌶️ Yes, ¡ay Dios mío!")
	if s.input.Spicy() {
		yes = st.OptionSelected.Render("› 🌶️ Yes, ¡ay Dios mío!")
	} else {
		no = st.OptionSelected.Render("› No, all calm")
	}
	b.WriteString(no + "\n" + yes)
	return b.String()
}

func (s *SpicyStep) Hints() []string {
	return []string{"space", "toggle", "enter", "calculate", "esc", "back"}
}
