package wizard

import tea "charm.land/bubbletea/v2"

// stepView is one screen of the wizard. Steps write straight into the
// controller's Input and send stepDoneMsg when the user confirms.
type stepView interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Hints() []string
}

// stepDoneMsg asks the wizard to advance past the current step.
type stepDoneMsg struct{}

func stepDone() tea.Msg { return stepDoneMsg{} }
