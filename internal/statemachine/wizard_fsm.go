package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Registration wizard steps, in order
const (
	StepBasicInfo      = "BasicInfo"
	StepWingsAndFloors = "WingsAndFloors"
	StepBankInfo       = "BankInfo"
	StepAmenities      = "Amenities"
	StepDisbursements  = "Disbursements"
	StepReview         = "Review"
)

// WizardSteps lists the steps from first to last
var WizardSteps = []string{
	StepBasicInfo,
	StepWingsAndFloors,
	StepBankInfo,
	StepAmenities,
	StepDisbursements,
	StepReview,
}

const (
	eventNext = "next"
	eventPrev = "prev"
)

var wizardEvents = buildWizardEvents()

func buildWizardEvents() fsm.Events {
	events := make(fsm.Events, 0, 2*(len(WizardSteps)-1))
	for i := 0; i < len(WizardSteps)-1; i++ {
		events = append(events,
			fsm.EventDesc{Name: eventNext, Src: []string{WizardSteps[i]}, Dst: WizardSteps[i+1]},
			fsm.EventDesc{Name: eventPrev, Src: []string{WizardSteps[i+1]}, Dst: WizardSteps[i]},
		)
	}
	return events
}

// StepValidator checks that the data of a step is complete before leaving it
type StepValidator func(step string) error

// WizardFSM drives the linear registration wizard
type WizardFSM struct {
	fsm *fsm.FSM
}

// NewWizardFSM creates a wizard machine positioned at step
func NewWizardFSM(step string) (*WizardFSM, error) {
	if StepIndex(step) < 0 {
		return nil, fmt.Errorf("%w: unknown wizard step %q", ErrInvalidTransition, step)
	}
	return &WizardFSM{fsm: fsm.NewFSM(step, wizardEvents, fsm.Callbacks{})}, nil
}

// Next validates the current step and advances. On the last step it stays put.
func (w *WizardFSM) Next(ctx context.Context, validate StepValidator) error {
	if w.IsLast() {
		return nil
	}
	if validate != nil {
		if err := validate(w.Current()); err != nil {
			return err
		}
	}
	if err := w.fsm.Event(ctx, eventNext); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	return nil
}

// Prev steps back without validation. On the first step it stays put.
func (w *WizardFSM) Prev(ctx context.Context) error {
	if w.Index() == 0 {
		return nil
	}
	if err := w.fsm.Event(ctx, eventPrev); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	return nil
}

// Current returns the current step
func (w *WizardFSM) Current() string {
	return w.fsm.Current()
}

// Index returns the position of the current step
func (w *WizardFSM) Index() int {
	return StepIndex(w.fsm.Current())
}

// IsLast reports whether the wizard is on the review step
func (w *WizardFSM) IsLast() bool {
	return w.fsm.Current() == StepReview
}

// StepIndex returns the position of step or -1
func StepIndex(step string) int {
	for i, s := range WizardSteps {
		if s == step {
			return i
		}
	}
	return -1
}
