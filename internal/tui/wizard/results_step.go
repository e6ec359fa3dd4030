package wizard

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/mark3labs/yavoy/internal/tui/theme"
)

// ShareTextEditedMsg is sent when the external editor returns with new share text.
type ShareTextEditedMsg struct {
	Text string
}

// ResultsStep renders the computed delay as markdown in a scrollable viewport.
type ResultsStep struct {
	viewport viewport.Model
	input    *delay.Input
	result   delay.Result
	tf       share.TimeFormatter
	markdown string
	text     string // Share text, possibly edited
	edited   bool
	width    int
}

// NewResultsStep creates the results view for res.
func NewResultsStep(in *delay.Input, res delay.Result, tf share.TimeFormatter) *ResultsStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	s := &ResultsStep{
		viewport: vp,
		input:    in,
		result:   res,
		tf:       tf,
		text:     share.Summary(in, res, tf),
		width:    60,
	}
	s.markdown = s.buildMarkdown()
	s.viewport.SetContent(renderMarkdown(s.markdown, s.width))
	return s
}

func (s *ResultsStep) buildMarkdown() string {
	cat := s.input.Category()
	var b strings.Builder

	fmt.Fprintf(&b, "# ⏰ %d minutes late\n\n", s.result.DelayMinutes)
	fmt.Fprintf(&b, "- **Event:** %s %s\n", cat.Emoji(), cat.Label())
	fmt.Fprintf(&b, "- **Original time:** %s\n", s.tf.Format(s.result.RequestedAt))
	fmt.Fprintf(&b, "- **Colombian time:** %s\n", s.tf.Format(s.result.ArrivalTime))
	fmt.Fprintf(&b, "- **People:** %d total, %d Colombian\n",
		s.input.TotalParticipants(), s.input.ColombianParticipants())
	if s.input.Spicy() {
		b.WriteString("- 🌶️ Spicy Colombian women factor included\n")
	}
	b.WriteString("\n## Breakdown\n\n")
	b.WriteString(s.result.Breakdown.Text)
	b.WriteString("\n")
	return b.String()
}

// renderMarkdown renders markdown with glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}

func (s *ResultsStep) SetSize(width, height int) {
	s.width = width
	s.viewport.SetWidth(width)

	// Reserve space for the warning line, share preview header and buttons
	vpHeight := height - 6
	if vpHeight < 5 {
		vpHeight = 5
	}
	s.viewport.SetHeight(vpHeight)
	s.viewport.SetContent(renderMarkdown(s.markdown, width))
}

func (s *ResultsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Edit) && os.Getenv("EDITOR") != "" {
			return s.openEditor()
		}
	case ShareTextEditedMsg:
		s.text = msg.Text
		s.edited = true
		return nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// openEditor launches $EDITOR on the share text.
func (s *ResultsStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "yavoy_share_*.txt")
	if err != nil {
		return nil
	}
	if _, err := tmpfile.WriteString(s.text); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("yavoy", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	return tea.ExecProcess(cmd, editorDone(tmpfile.Name()))
}

// editorDone reads the edited text back and removes path whatever the outcome.
func editorDone(path string) func(error) tea.Msg {
	return func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			logger.Warn("Editor exited with error: %v", err)
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Reading edited share text: %v", err)
			return nil
		}
		return ShareTextEditedMsg{Text: string(content)}
	}
}

// Content returns the share content for this result, carrying any edited text.
func (s *ResultsStep) Content() share.Content {
	c := share.NewContent(s.input, s.result, s.tf)
	c.Text = s.text
	return c
}

// ShareText returns the current share text.
func (s *ResultsStep) ShareText() string { return s.text }

// WasEdited reports whether the share text came back from the editor.
func (s *ResultsStep) WasEdited() bool { return s.edited }

func (s *ResultsStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(s.viewport.View())
	if s.result.Breakdown.Discrepancy() {
		b.WriteString("\n")
		b.WriteString(st.Warning.Render(fmt.Sprintf(
			"⚠ Breakdown adds up to %d minutes; the delay charged is %d.",
			s.result.Breakdown.StatedMinutes, s.result.DelayMinutes)))
	}
	if s.edited {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("✎ share text edited"))
	}
	return b.String()
}

func (s *ResultsStep) Hints() []string {
	if os.Getenv("EDITOR") != "" {
		return []string{"↑↓", "scroll", "s", "share", "e", "edit", "r", "start over", "tab", "buttons"}
	}
	return []string{"↑↓", "scroll", "s", "share", "r", "start over", "tab", "buttons"}
}
