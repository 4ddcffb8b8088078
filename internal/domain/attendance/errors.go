package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound      = errors.New("attendance session not found")
	ErrClockBusy            = errors.New("another clock action is in progress")
	ErrGeolocationRequired  = errors.New("geolocation is required for this action")
	ErrEventOutOfOrder      = errors.New("clock event is earlier than the last recorded event")
	ErrNoBreakWindow        = errors.New("the scheduled shift has no obligatory break window")
	ErrObligatoryBreakTaken = errors.New("the obligatory break was already taken")
	ErrBreakNotReachedYet   = errors.New("the obligatory break time has not been reached yet")
)

// InvalidTransitionError reports a clock action that the current session
// state does not accept.
type InvalidTransitionError struct {
	State  State
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %q is not allowed in state %q", e.Action, e.State)
}
