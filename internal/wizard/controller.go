// Package wizard implements the step machine that collects event inputs and
// produces a delay result. It has no rendering concerns; internal/tui/wizard drives it.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
)

// ErrInvalidTransition is returned when a step transition is not allowed from the current step.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Step identifies a wizard screen.
type Step int

const (
	StepFamily     Step = iota // 0: cultural family selection
	StepTime                   // 1: requested time
	StepCategory               // 2: event category
	StepTotal                  // 3: total participants
	StepColombians             // 4: Colombian participants
	StepSpicy                  // 5: spicy factor
	StepResults                // 6: results (terminal)
)

// StepCount is the number of steps including results.
const StepCount = int(StepResults) + 1

var stepTitles = [StepCount]string{
	StepFamily:     "Choose your cultural family",
	StepTime:       "Step 1: When is your event?",
	StepCategory:   "Step 2: What type of event?",
	StepTotal:      "Step 3: How many people total?",
	StepColombians: "Step 4: The crucial question... 🇨🇴",
	StepSpicy:      "Step 5: The ULTIMATE question... 🌶️",
	StepResults:    "¡Tranquilo, que allá llego!",
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	if s < 0 || int(s) >= StepCount {
		return ""
	}
	return stepTitles[s]
}

func (s Step) String() string {
	switch s {
	case StepFamily:
		return "family"
	case StepTime:
		return "time"
	case StepCategory:
		return "category"
	case StepTotal:
		return "total"
	case StepColombians:
		return "colombians"
	case StepSpicy:
		return "spicy"
	case StepResults:
		return "results"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Observer is notified about controller activity. Implementations must not block.
// Finalized receives a copy of the input, so observers may keep it.
type Observer interface {
	TransitionRejected(op string, from Step)
	Finalized(family delay.Family, in *delay.Input, res delay.Result)
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the source of "now" used for default requested times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithObserver registers an observer for transitions and results.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// WithFamily preselects a family. Locked families are ignored.
func WithFamily(f delay.Family) Option {
	return func(c *Controller) {
		if f.Available() {
			c.family = f
		}
	}
}

// Controller owns the current step, the input model and the last result.
// It is not safe for concurrent use; one controller belongs to one session.
type Controller struct {
	step     Step
	family   delay.Family
	input    *delay.Input
	result   *delay.Result
	now      func() time.Time
	observer Observer
}

// New creates a controller at the family selection step with default inputs.
func New(opts ...Option) *Controller {
	c := &Controller{
		step:   StepFamily,
		family: delay.FamilyColombian,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.input = delay.NewInput(c.now())
	return c
}

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Family returns the selected cultural family.
func (c *Controller) Family() delay.Family { return c.family }

// Input returns the input model. The presentation layer writes through its setters.
func (c *Controller) Input() *delay.Input { return c.input }

// Result returns the last computed result, or false before the wizard is finalized.
func (c *Controller) Result() (delay.Result, bool) {
	if c.result == nil {
		return delay.Result{}, false
	}
	return *c.result, true
}

// CanAdvance reports whether Advance would succeed.
func (c *Controller) CanAdvance() bool { return c.step < StepResults }

// CanRetreat reports whether Retreat would succeed.
func (c *Controller) CanRetreat() bool { return c.step > StepTime && c.step < StepResults }

// SelectFamily chooses the cultural family. Only valid on the family step.
func (c *Controller) SelectFamily(f delay.Family) error {
	if c.step != StepFamily {
		return c.reject("select-family")
	}
	if !f.Available() {
		return fmt.Errorf("%w: %s", delay.ErrFamilyLocked, f.Label())
	}
	c.family = f
	return nil
}

// Advance moves one step forward. Advancing from the spicy step finalizes.
func (c *Controller) Advance() error {
	switch {
	case !c.CanAdvance():
		return c.reject("advance")
	case c.step == StepSpicy:
		_, err := c.Finalize()
		return err
	}
	c.step++
	logger.Debug("Wizard advanced to %s", c.step)
	return nil
}

// Retreat moves one step back. Not allowed from the first input step or from results.
func (c *Controller) Retreat() error {
	if !c.CanRetreat() {
		return c.reject("retreat")
	}
	c.step--
	logger.Debug("Wizard retreated to %s", c.step)
	return nil
}

// Finalize computes the delay for the current input and moves to the results step.
// Only valid from the spicy step.
func (c *Controller) Finalize() (delay.Result, error) {
	if c.step != StepSpicy {
		return delay.Result{}, c.reject("finalize")
	}

	calc, ok := c.family.Calculator()
	if !ok {
		return delay.Result{}, fmt.Errorf("%w: %s", delay.ErrFamilyLocked, c.family.Label())
	}

	res := delay.Compute(calc, c.input)
	c.result = &res
	c.step = StepResults
	logger.Info("Wizard finalized: family=%s event=%s total=%d colombians=%d spicy=%v delay=%dm",
		c.family, c.input.Category(), c.input.TotalParticipants(), c.input.ColombianParticipants(),
		c.input.Spicy(), res.DelayMinutes)

	if c.observer != nil {
		c.observer.Finalized(c.family, c.input.Clone(), res)
	}
	return res, nil
}

// Reset restores default inputs and returns to the family step. Always succeeds.
func (c *Controller) Reset() {
	c.input = delay.NewInput(c.now())
	c.result = nil
	c.step = StepFamily
	logger.Debug("Wizard reset")
}

func (c *Controller) reject(op string) error {
	logger.Debug("Rejected %s from step %s", op, c.step)
	if c.observer != nil {
		c.observer.TransitionRejected(op, c.step)
	}
	return fmt.Errorf("%w: cannot %s from step %d (%s)", ErrInvalidTransition, op, int(c.step), c.step)
}
