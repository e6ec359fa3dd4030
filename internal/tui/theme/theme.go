package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is built from these hex strings
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	currentMu sync.RWMutex
	current   = NewColombia()
)

// Current returns the active theme.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active theme. A nil theme is ignored.
func SetCurrent(t *Theme) {
	if t == nil {
		return
	}
	currentMu.Lock()
	current = t
	currentMu.Unlock()
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Background(c(t.BgBase)).
			Padding(1, 2),
		StepTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true).
			Align(lipgloss.Center),
		Subtitle: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)).
			Italic(true),
		Text:  lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted: lipgloss.NewStyle().Foreground(c(t.FgMuted)),

		Option: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			PaddingLeft(2),
		OptionSelected: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Primary)).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		OptionLocked: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Strikethrough(true).
			PaddingLeft(2),

		Counter: lipgloss.NewStyle().
			Foreground(c(t.FgBright)).
			Background(c(t.BgSurface0)).
			Bold(true).
			Padding(0, 3),
		Delay: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(c(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(c(t.Warning)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(c(t.Error)).Bold(true),

		ProgressDone:    lipgloss.NewStyle().Foreground(c(t.Primary)),
		ProgressCurrent: lipgloss.NewStyle().Foreground(c(t.Tertiary)).Bold(true),
		ProgressTodo:    lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		ButtonNormal: button.
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)),
		ButtonDisabled: button.
			Foreground(c(t.FgMuted)).
			Background(c(t.BgMantle)),
		ButtonFocused: button.
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Warning)).
			Padding(0, 1).
			Bold(true),
	}
}
