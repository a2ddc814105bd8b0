package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/propease/propease-api/internal/models"
)

// ErrInvalidTransition is returned for any event not allowed from the
// current state
var ErrInvalidTransition = errors.New("invalid state transition")

// Unit events
const (
	EventBook     = "book"
	EventRegister = "register"
	EventCancel   = "cancel"
)

var unitEvents = fsm.Events{
	// vacant → booked
	{Name: EventBook, Src: []string{models.UnitStatusVacant}, Dst: models.UnitStatusBooked},

	// booked → registered (terminal)
	{Name: EventRegister, Src: []string{models.UnitStatusBooked}, Dst: models.UnitStatusRegistered},

	// booked → vacant
	{Name: EventCancel, Src: []string{models.UnitStatusBooked}, Dst: models.UnitStatusVacant},
}

// UnitFSM wraps a unit with its status machine. It looks only at the unit;
// keeping the booking record in step is the caller's job.
type UnitFSM struct {
	unit *models.Unit
	fsm  *fsm.FSM
}

// NewUnitFSM creates a new unit state machine
func NewUnitFSM(unit *models.Unit) *UnitFSM {
	return &UnitFSM{
		unit: unit,
		fsm:  fsm.NewFSM(unit.Status, unitEvents, fsm.Callbacks{}),
	}
}

// Book transitions the unit to booked
func (u *UnitFSM) Book(ctx context.Context) error {
	if !u.unit.MayBook() {
		return fmt.Errorf("%w: unit %s cannot be booked in current state: %s", ErrInvalidTransition, u.unit.UnitNumber, u.unit.Status)
	}
	return u.fire(ctx, EventBook)
}

// Register transitions the unit to registered
func (u *UnitFSM) Register(ctx context.Context) error {
	if !u.unit.MayRegister() {
		return fmt.Errorf("%w: unit %s cannot be registered in current state: %s", ErrInvalidTransition, u.unit.UnitNumber, u.unit.Status)
	}
	return u.fire(ctx, EventRegister)
}

// Cancel transitions the unit back to vacant
func (u *UnitFSM) Cancel(ctx context.Context) error {
	if !u.unit.MayCancel() {
		return fmt.Errorf("%w: unit %s booking cannot be cancelled in current state: %s", ErrInvalidTransition, u.unit.UnitNumber, u.unit.Status)
	}
	return u.fire(ctx, EventCancel)
}

// Fire applies any unit event by name
func (u *UnitFSM) Fire(ctx context.Context, event string) error {
	switch event {
	case EventBook:
		return u.Book(ctx)
	case EventRegister:
		return u.Register(ctx)
	case EventCancel:
		return u.Cancel(ctx)
	}
	return fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event)
}

func (u *UnitFSM) fire(ctx context.Context, event string) error {
	if err := u.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTransition, event, err)
	}
	u.unit.Status = u.fsm.Current()
	return nil
}

// Current returns the current state
func (u *UnitFSM) Current() string {
	return u.fsm.Current()
}

// Can checks if a transition is possible
func (u *UnitFSM) Can(event string) bool {
	return u.fsm.Can(event)
}
