// Package wizard is the bubbletea front end for the calculator step machine.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/mark3labs/yavoy/internal/tui/theme"
	flow "github.com/mark3labs/yavoy/internal/wizard"
)

// ShareDoneMsg reports the outcome of a share dispatched from the results screen.
type ShareDoneMsg struct {
	Target string
	Err    error
}

// toastDismissMsg clears the status toast.
type toastDismissMsg struct{ seq int }

// WizardResult is what the wizard leaves behind when it exits.
type WizardResult struct {
	Result    delay.Result
	Finalized bool
	Shares    int // Successful shares during the session
}

// WizardModel is the main BubbleTea model for the calculator wizard.
type WizardModel struct {
	ctrl    *flow.Controller
	gateway share.Gateway
	tf      share.TimeFormatter
	timeout time.Duration

	step    stepView
	buttons *ButtonBar
	spinner Spinner

	sharing   bool
	shares    int
	toast     string
	toastSeq  int
	cancelled bool
	width     int
	height    int
}

// Option configures a WizardModel.
type Option func(*WizardModel)

// WithShareTimeout bounds each share dispatch.
func WithShareTimeout(d time.Duration) Option {
	return func(m *WizardModel) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewWizardModel creates the model around ctrl. gateway may be nil, which disables sharing.
func NewWizardModel(ctrl *flow.Controller, gateway share.Gateway, tf share.TimeFormatter, opts ...Option) *WizardModel {
	m := &WizardModel{
		ctrl:    ctrl,
		gateway: gateway,
		tf:      tf,
		timeout: 10 * time.Second,
		buttons: NewButtonBar(nil),
		spinner: NewSpinner(),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.buildStep()
	return m
}

// RunWizard runs the wizard as a standalone program and returns what it produced.
func RunWizard(ctx context.Context, ctrl *flow.Controller, gateway share.Gateway, tf share.TimeFormatter) (*WizardResult, error) {
	m := NewWizardModel(ctrl, gateway, tf)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return wizModel.Result(), nil
}

// Result summarizes the session.
func (m *WizardModel) Result() *WizardResult {
	res, ok := m.ctrl.Result()
	return &WizardResult{Result: res, Finalized: ok, Shares: m.shares}
}

// Cancelled reports whether the user quit.
func (m *WizardModel) Cancelled() bool { return m.cancelled }

// Controller exposes the step machine.
func (m *WizardModel) Controller() *flow.Controller { return m.ctrl }

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.focusStep()
}

// buildStep creates the component for the controller's current step.
func (m *WizardModel) buildStep() {
	in := m.ctrl.Input()
	switch m.ctrl.Step() {
	case flow.StepFamily:
		m.step = NewFamilyStep(m.ctrl.Family())
	case flow.StepTime:
		m.step = NewTimeStep(in, m.tf)
	case flow.StepCategory:
		m.step = NewCategoryStep(in)
	case flow.StepTotal:
		m.step = NewTotalStep(in)
	case flow.StepColombians:
		m.step = NewColombiansStep(in)
	case flow.StepSpicy:
		m.step = NewSpicyStep(in)
	case flow.StepResults:
		res, _ := m.ctrl.Result()
		m.step = NewResultsStep(in, res, m.tf)
	}
	m.buildButtons()
	m.updateStepSize()
}

func (m *WizardModel) buildButtons() {
	switch m.ctrl.Step() {
	case flow.StepFamily:
		m.buttons.SetButtons(nil)
	case flow.StepResults:
		m.buttons.SetButtons(CreateResultButtons(m.gateway != nil && !m.sharing))
	case flow.StepSpicy:
		m.buttons.SetButtons(CreateBackNextButtons(m.ctrl.CanRetreat(), "Calculate"))
	default:
		m.buttons.SetButtons(CreateBackNextButtons(m.ctrl.CanRetreat(), "Next →"))
	}
}

func (m *WizardModel) focusStep() tea.Cmd {
	if ts, ok := m.step.(*TimeStep); ok {
		return ts.Focus()
	}
	return nil
}

// updateStepSize updates the size of the current step component.
func (m *WizardModel) updateStepSize() {
	contentWidth := m.modalWidth() - 6
	contentHeight := m.height - 14
	if contentHeight < 8 {
		contentHeight = 8
	}
	m.step.SetSize(contentWidth, contentHeight)
	m.buttons.SetWidth(contentWidth)
}

func (m *WizardModel) modalWidth() int {
	w := m.width - 10
	if w < 60 {
		w = 60
	}
	if w > 90 {
		w = 90 // Max width for readability
	}
	return w
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateStepSize()
		return m, nil

	case FamilySelectedMsg:
		if err := m.ctrl.SelectFamily(msg.Family); err != nil {
			return m, m.showToast(err.Error())
		}
		return m, m.advance()

	case stepDoneMsg:
		return m, m.advance()

	case ShareDoneMsg:
		m.sharing = false
		m.buildButtons()
		if msg.Err != nil {
			return m, m.showToast(fmt.Sprintf("✗ Share via %s failed: %v", msg.Target, msg.Err))
		}
		m.shares++
		return m, m.showToast(fmt.Sprintf("✓ Shared via %s", msg.Target))

	case spinner.TickMsg:
		if !m.sharing {
			return m, nil
		}
		return m, m.spinner.Update(msg)

	case toastDismissMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m, m.step.Update(msg)
}

// handleKey processes wizard-level keys. handled is false when the key belongs to the step.
func (m *WizardModel) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		m.cancelled = true
		return tea.Quit, true
	}

	if m.ctrl.Step() == flow.StepResults {
		return m.handleResultsKey(msg)
	}

	if key.Matches(msg, keys.Back) {
		return m.retreat(), true
	}
	return nil, false
}

func (m *WizardModel) handleResultsKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Tab):
		if m.buttons.Focused() {
			m.buttons.FocusNext()
		} else {
			m.buttons.FocusFirst()
		}
		return nil, true
	case key.Matches(msg, keys.ShiftTab):
		if m.buttons.Focused() {
			m.buttons.FocusPrev()
		} else {
			m.buttons.FocusLast()
		}
		return nil, true
	case m.buttons.Focused() && key.Matches(msg, keys.Confirm):
		switch m.buttons.FocusedButton() {
		case buttonStartOver:
			return m.startOver(), true
		case buttonShare:
			return m.share(), true
		}
		return nil, true
	case key.Matches(msg, keys.Share):
		return m.share(), true
	case key.Matches(msg, keys.Restart):
		return m.startOver(), true
	case key.Matches(msg, keys.Back):
		// Results are terminal; only Start Over leaves them.
		if err := m.ctrl.Retreat(); err != nil {
			return m.showToast("Use Start Over to plan another event"), true
		}
		return nil, true
	}
	return nil, false
}

func (m *WizardModel) advance() tea.Cmd {
	if err := m.ctrl.Advance(); err != nil {
		logger.Warn("Wizard advance rejected: %v", err)
		return m.showToast(err.Error())
	}
	m.buildStep()
	return m.focusStep()
}

func (m *WizardModel) retreat() tea.Cmd {
	if err := m.ctrl.Retreat(); err != nil {
		switch m.ctrl.Step() {
		case flow.StepFamily:
			m.cancelled = true
			return tea.Quit
		case flow.StepTime:
			// No way back to family selection
			return m.showToast("This is the first step; ctrl+c quits")
		}
		return m.showToast(err.Error())
	}
	m.buildStep()
	return m.focusStep()
}

func (m *WizardModel) startOver() tea.Cmd {
	m.ctrl.Reset()
	m.sharing = false
	m.buildStep()
	return tea.Batch(m.focusStep(), m.showToast("¡Listo! Let's plan another one"))
}

// share dispatches the gateway off the update loop.
func (m *WizardModel) share() tea.Cmd {
	if m.gateway == nil || m.sharing {
		return nil
	}
	rs, ok := m.step.(*ResultsStep)
	if !ok {
		return nil
	}
	m.sharing = true
	m.buildButtons()

	content := rs.Content()
	gateway := m.gateway
	timeout := m.timeout
	dispatch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := gateway.Share(ctx, content)
		return ShareDoneMsg{Target: gateway.Name(), Err: err}
	}
	return tea.Batch(dispatch, m.spinner.Tick())
}

// showToast displays a status line for 3 seconds.
func (m *WizardModel) showToast(text string) tea.Cmd {
	m.toastSeq++
	m.toast = text
	seq := m.toastSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Toast returns the visible status line ("" when none).
func (m *WizardModel) Toast() string { return m.toast }

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := m.renderModal()

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal wraps the step content in a modal container with title.
func (m *WizardModel) renderModal() string {
	st := theme.Current().S()
	step := m.ctrl.Step()

	var sections []string
	sections = append(sections, st.StepTitle.Render(step.Title()))
	if dots := renderProgress(step); dots != "" {
		sections = append(sections, dots)
	}
	sections = append(sections, "", m.step.View(), "")

	if bar := m.buttons.Render(); bar != "" {
		sections = append(sections, bar, "")
	}
	sections = append(sections, renderHintBar(m.step.Hints()...))
	if m.sharing {
		sections = append(sections, "", m.spinner.View()+" "+st.Muted.Render("Sharing via "+m.gateway.Name()+"..."))
	}
	if m.toast != "" {
		sections = append(sections, "", st.Toast.Render(m.toast))
	}

	modal := st.ModalContainer.Width(m.modalWidth()).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
