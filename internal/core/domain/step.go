package domain

import (
	"fmt"
	"math"
	"slices"
)

// Step is one screen of the campaign wizard.
type Step string

const (
	StepChooseTrack  Step = "choose-track"
	StepStrategyType Step = "strategy-type"
	StepAdCreation   Step = "ad-creation"
	StepBudget       Step = "budget"
)

// Steps is the fixed wizard order.
var Steps = []Step{StepChooseTrack, StepStrategyType, StepAdCreation, StepBudget}

var stepLabels = map[Step]string{
	StepChooseTrack:  "Choose Track",
	StepStrategyType: "Strategy Type",
	StepAdCreation:   "Ad Settings",
	StepBudget:       "Budget & Payment",
}

// ParseStep converts a wire value into a Step.
func ParseStep(s string) (Step, error) {
	st := Step(s)
	if !slices.Contains(Steps, st) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return st, nil
}

// Index returns the position of s in Steps, or -1.
func (s Step) Index() int {
	return slices.Index(Steps, s)
}

// Label is the human-readable step title.
func (s Step) Label() string {
	if l, ok := stepLabels[s]; ok {
		return l
	}
	return "Current step"
}

// StepState is the indicator state of one step.
type StepState struct {
	Step      Step   `json:"id"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// Progress drives the step indicator.
type Progress struct {
	ActiveIndex int         `json:"activeIndex"`
	Percent     int         `json:"percent"`
	Steps       []StepState `json:"steps"`
}

// ProgressOf computes the indicator for the active step. In subscription
// view every step is reported completed.
func ProgressOf(active Step, subscription bool) Progress {
	idx := active.Index()
	p := Progress{ActiveIndex: idx, Steps: make([]StepState, 0, len(Steps))}
	switch {
	case subscription:
		p.Percent = 100
	case idx > 0:
		p.Percent = int(math.Round(float64(idx) / float64(len(Steps)-1) * 100))
	}
	for i, s := range Steps {
		p.Steps = append(p.Steps, StepState{
			Step:      s,
			Label:     s.Label(),
			Active:    s == active,
			Completed: subscription || i < idx,
		})
	}
	return p
}
