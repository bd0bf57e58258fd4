package wizard

import (
	"fmt"

	"soundcamps/internal/core/domain"
)

// Sequencer tracks the active step and the furthest step reached through
// Next. Transitions are unconditional; callers validate before calling Next.
type Sequencer struct {
	current      domain.Step
	reached      int
	subscription bool
}

// NewSequencer starts at the first step.
func NewSequencer() *Sequencer {
	return &Sequencer{current: domain.StepChooseTrack}
}

// Current returns the active step.
func (q *Sequencer) Current() domain.Step {
	return q.current
}

// Reached returns the furthest step entered through Next.
func (q *Sequencer) Reached() domain.Step {
	return domain.Steps[q.reached]
}

// Next moves to the following step; no-op on the last one.
func (q *Sequencer) Next() {
	if i := q.current.Index(); i >= 0 && i < len(domain.Steps)-1 {
		q.current = domain.Steps[i+1]
		q.reached = max(q.reached, i+1)
	}
}

// Previous moves to the preceding step; no-op on the first one.
func (q *Sequencer) Previous() {
	if i := q.current.Index(); i > 0 {
		q.current = domain.Steps[i-1]
	}
}

// SetStep jumps to a step already reached and leaves the subscription view.
// It is the "back to budget" affordance of the subscription screen; steps
// past the furthest reached one fail with ErrStepNotReached.
func (q *Sequencer) SetStep(step domain.Step) error {
	i := step.Index()
	switch {
	case i < 0:
		return fmt.Errorf("%w: %q", domain.ErrUnknownStep, step)
	case i > q.reached:
		return fmt.Errorf("%w: %s", domain.ErrStepNotReached, step)
	}
	q.current = step
	q.subscription = false
	return nil
}

// EnterSubscriptionView switches to the plan picker, which shows every step
// as completed. It is only offered once the budget step was reached.
func (q *Sequencer) EnterSubscriptionView() error {
	if q.reached < len(domain.Steps)-1 {
		return fmt.Errorf("%w: %s", domain.ErrStepNotReached, domain.StepBudget)
	}
	q.subscription = true
	return nil
}

// InSubscriptionView reports whether the plan picker is shown.
func (q *Sequencer) InSubscriptionView() bool {
	return q.subscription
}

// Progress renders the step indicator for the current state.
func (q *Sequencer) Progress() domain.Progress {
	return domain.ProgressOf(q.current, q.subscription)
}
