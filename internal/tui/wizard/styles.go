package wizard

import (
	"strings"

	"github.com/mark3labs/yavoy/internal/tui/theme"
	flow "github.com/mark3labs/yavoy/internal/wizard"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := theme.Current().S()

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderProgress renders one dot per input step plus results.
// Family selection sits before the dots.
func renderProgress(step flow.Step) string {
	if step == flow.StepFamily {
		return ""
	}
	s := theme.Current().S()

	dots := make([]string, 0, flow.StepCount-1)
	for i := flow.StepTime; i <= flow.StepResults; i++ {
		switch {
		case i < step:
			dots = append(dots, s.ProgressDone.Render("●"))
		case i == step:
			dots = append(dots, s.ProgressCurrent.Render("●"))
		default:
			dots = append(dots, s.ProgressTodo.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}
