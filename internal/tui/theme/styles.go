package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle    lipgloss.Style
	ModalContainer lipgloss.Style
	StepTitle      lipgloss.Style
	Subtitle       lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style

	// Selectable lists
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	OptionLocked   lipgloss.Style

	Counter lipgloss.Style
	Delay   lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	ProgressDone    lipgloss.Style
	ProgressCurrent lipgloss.Style
	ProgressTodo    lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	Toast lipgloss.Style
}
