package attendance

import (
	"time"
)

// Action is the wire value an employee sends when clocking.
type Action string

const (
	ActionStart           Action = "iniciar"
	ActionObligatoryBreak Action = "descanso_obligatorio"
	ActionAdditionalBreak Action = "descanso_adicional"
	ActionResume          Action = "reanudar"
	ActionFinish          Action = "finalizar"
)

var ActionValues = []string{
	string(ActionStart),
	string(ActionObligatoryBreak),
	string(ActionAdditionalBreak),
	string(ActionResume),
	string(ActionFinish),
}

// State is the session's position in the clocking lifecycle.
type State string

const (
	StateNotStarted        State = "not_started"
	StateActive            State = "active"
	StateOnObligatoryBreak State = "on_obligatory_break"
	StateOnAdditionalBreak State = "on_additional_break"
	StateFinished          State = "finished"
)

// Event is one clock action applied to a session.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	At        time.Time `json:"at"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// Session is one employee's attendance record for a single day. A session
// may be linked to a schedule instance, in which case break gating rules
// derived from the instance apply.
type Session struct {
	ID                 string
	EmployeeID         string
	ScheduleInstanceID *string
	Date               time.Time
	State              State
	Events             []Event

	WorkedMinutes          int
	ObligatoryBreakMinutes int
	AdditionalBreakMinutes int

	// BreakEligibleAfterMin is how many worked minutes must pass before
	// the obligatory break can start. Nil when the linked instance has no
	// break window, or the session is unlinked.
	BreakEligibleAfterMin *int

	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions maps each state to the actions it accepts.
var transitions = map[State]map[Action]State{
	StateNotStarted: {
		ActionStart: StateActive,
	},
	StateActive: {
		ActionObligatoryBreak: StateOnObligatoryBreak,
		ActionAdditionalBreak: StateOnAdditionalBreak,
		ActionFinish:          StateFinished,
	},
	StateOnObligatoryBreak: {
		ActionResume: StateActive,
	},
	StateOnAdditionalBreak: {
		ActionResume: StateActive,
	},
	StateFinished: {},
}

// Next returns the state reached by applying action to state.
func Next(state State, action Action) (State, error) {
	next, ok := transitions[state][action]
	if !ok {
		return state, &InvalidTransitionError{State: state, Action: action}
	}
	return next, nil
}

// ObligatoryBreakTaken reports whether the session already spent its
// obligatory break. The break is once per session.
func (s *Session) ObligatoryBreakTaken() bool {
	for _, ev := range s.Events {
		if ev.Action == ActionObligatoryBreak {
			return true
		}
	}
	return false
}

// ActiveMinutesAt returns the minutes the session spent in the active
// state up to at, walking the event log.
func (s *Session) ActiveMinutesAt(at time.Time) int {
	worked, _, _ := s.totalsAt(at)
	return worked
}

// RunningTotals returns the minute buckets as of at, counting an open
// interval up to that instant. Finished sessions keep their frozen totals.
func (s *Session) RunningTotals(at time.Time) (worked, obligatory, additional int) {
	if s.State == StateFinished {
		return s.WorkedMinutes, s.ObligatoryBreakMinutes, s.AdditionalBreakMinutes
	}
	return s.totalsAt(at)
}

// Apply validates the clock action against the current state and the
// session's break gating, appends the event and recomputes totals.
// Events must arrive in chronological order.
func (s *Session) Apply(ev Event) error {
	if n := len(s.Events); n > 0 && ev.At.Before(s.Events[n-1].At) {
		return ErrEventOutOfOrder
	}

	next, err := Next(s.State, ev.Action)
	if err != nil {
		return err
	}

	switch ev.Action {
	case ActionObligatoryBreak:
		if s.BreakEligibleAfterMin == nil {
			return ErrNoBreakWindow
		}
		if s.ObligatoryBreakTaken() {
			return ErrObligatoryBreakTaken
		}
		if s.ActiveMinutesAt(ev.At) < *s.BreakEligibleAfterMin {
			return ErrBreakNotReachedYet
		}
	case ActionFinish:
		at := ev.At
		s.ClosedAt = &at
	}

	s.Events = append(s.Events, ev)
	s.State = next
	s.WorkedMinutes, s.ObligatoryBreakMinutes, s.AdditionalBreakMinutes = s.totalsAt(ev.At)
	return nil
}

// totalsAt replays the event log and accumulates minutes per bucket up
// to the given instant. Open intervals (still active or on break) count
// up to at.
func (s *Session) totalsAt(at time.Time) (worked, obligatory, additional int) {
	state := StateNotStarted
	var since time.Time

	add := func(until time.Time) {
		m := int(until.Sub(since).Minutes())
		if m < 0 {
			m = 0
		}
		switch state {
		case StateActive:
			worked += m
		case StateOnObligatoryBreak:
			obligatory += m
		case StateOnAdditionalBreak:
			additional += m
		}
	}

	for _, ev := range s.Events {
		if ev.At.After(at) {
			break
		}
		add(ev.At)
		state, _ = Next(state, ev.Action)
		since = ev.At
	}
	if state == StateActive || state == StateOnObligatoryBreak || state == StateOnAdditionalBreak {
		add(at)
	}
	return worked, obligatory, additional
}
