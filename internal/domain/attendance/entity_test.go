package attendance

import (
	"errors"
	"testing"
	"time"
)

func at(hhmm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", "2025-03-10 "+hhmm)
	return t
}

func intPtr(i int) *int { return &i }

func TestNextTransitions(t *testing.T) {
	cases := []struct {
		state   State
		action  Action
		want    State
		wantErr bool
	}{
		{StateNotStarted, ActionStart, StateActive, false},
		{StateNotStarted, ActionFinish, "", true},
		{StateNotStarted, ActionResume, "", true},
		{StateActive, ActionObligatoryBreak, StateOnObligatoryBreak, false},
		{StateActive, ActionAdditionalBreak, StateOnAdditionalBreak, false},
		{StateActive, ActionFinish, StateFinished, false},
		{StateActive, ActionStart, "", true},
		{StateOnObligatoryBreak, ActionResume, StateActive, false},
		{StateOnObligatoryBreak, ActionFinish, "", true},
		{StateOnAdditionalBreak, ActionResume, StateActive, false},
		{StateFinished, ActionStart, "", true},
		{StateFinished, ActionResume, "", true},
	}
	for _, c := range cases {
		got, err := Next(c.state, c.action)
		if c.wantErr {
			var invalid *InvalidTransitionError
			if !errors.As(err, &invalid) {
				t.Errorf("Next(%s, %s): expected InvalidTransitionError, got %v", c.state, c.action, err)
				continue
			}
			if invalid.State != c.state || invalid.Action != c.action {
				t.Errorf("Next(%s, %s): error payload = {%s, %s}", c.state, c.action, invalid.State, invalid.Action)
			}
			continue
		}
		if err != nil {
			t.Errorf("Next(%s, %s): unexpected error %v", c.state, c.action, err)
			continue
		}
		if got != c.want {
			t.Errorf("Next(%s, %s) = %s, want %s", c.state, c.action, got, c.want)
		}
	}
}

func TestSessionFullDayTotals(t *testing.T) {
	s := &Session{State: StateNotStarted, BreakEligibleAfterMin: intPtr(240)}

	steps := []struct {
		action Action
		when   string
	}{
		{ActionStart, "09:00"},
		{ActionObligatoryBreak, "13:00"},
		{ActionResume, "13:30"},
		{ActionFinish, "17:00"},
	}
	for _, st := range steps {
		if err := s.Apply(Event{Action: st.action, At: at(st.when)}); err != nil {
			t.Fatalf("%s at %s: %v", st.action, st.when, err)
		}
	}

	if s.State != StateFinished {
		t.Errorf("state = %s, want finished", s.State)
	}
	if s.WorkedMinutes != 450 {
		t.Errorf("worked minutes = %d, want 450", s.WorkedMinutes)
	}
	if s.ObligatoryBreakMinutes != 30 {
		t.Errorf("obligatory break minutes = %d, want 30", s.ObligatoryBreakMinutes)
	}
	if s.AdditionalBreakMinutes != 0 {
		t.Errorf("additional break minutes = %d, want 0", s.AdditionalBreakMinutes)
	}
	if s.ClosedAt == nil || !s.ClosedAt.Equal(at("17:00")) {
		t.Errorf("closed at = %v, want 17:00", s.ClosedAt)
	}
}

func TestSessionObligatoryBreakGating(t *testing.T) {
	s := &Session{State: StateNotStarted, BreakEligibleAfterMin: intPtr(240)}
	if err := s.Apply(Event{Action: ActionStart, At: at("09:00")}); err != nil {
		t.Fatal(err)
	}

	if err := s.Apply(Event{Action: ActionObligatoryBreak, At: at("10:00")}); !errors.Is(err, ErrBreakNotReachedYet) {
		t.Errorf("break at 10:00 = %v, want ErrBreakNotReachedYet", err)
	}
	if err := s.Apply(Event{Action: ActionObligatoryBreak, At: at("13:00")}); err != nil {
		t.Fatalf("break at 13:00: %v", err)
	}
	if err := s.Apply(Event{Action: ActionResume, At: at("13:30")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(Event{Action: ActionObligatoryBreak, At: at("15:00")}); !errors.Is(err, ErrObligatoryBreakTaken) {
		t.Errorf("second obligatory break = %v, want ErrObligatoryBreakTaken", err)
	}
}

func TestSessionObligatoryBreakWithoutWindow(t *testing.T) {
	s := &Session{State: StateNotStarted}
	if err := s.Apply(Event{Action: ActionStart, At: at("09:00")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(Event{Action: ActionObligatoryBreak, At: at("13:00")}); !errors.Is(err, ErrNoBreakWindow) {
		t.Errorf("break without window = %v, want ErrNoBreakWindow", err)
	}
}

func TestSessionAdditionalBreaksUnlimited(t *testing.T) {
	s := &Session{State: StateNotStarted}
	steps := []struct {
		action Action
		when   string
	}{
		{ActionStart, "09:00"},
		{ActionAdditionalBreak, "10:00"},
		{ActionResume, "10:10"},
		{ActionAdditionalBreak, "12:00"},
		{ActionResume, "12:15"},
		{ActionFinish, "17:00"},
	}
	for _, st := range steps {
		if err := s.Apply(Event{Action: st.action, At: at(st.when)}); err != nil {
			t.Fatalf("%s at %s: %v", st.action, st.when, err)
		}
	}
	if s.AdditionalBreakMinutes != 25 {
		t.Errorf("additional break minutes = %d, want 25", s.AdditionalBreakMinutes)
	}
	if s.WorkedMinutes != 455 {
		t.Errorf("worked minutes = %d, want 455", s.WorkedMinutes)
	}
}

func TestSessionRunningTotals(t *testing.T) {
	s := &Session{State: StateNotStarted}
	if err := s.Apply(Event{Action: ActionStart, At: at("09:00")}); err != nil {
		t.Fatal(err)
	}

	// Stored totals stay at the last event; a read must count the open
	// interval up to the asked instant.
	if s.WorkedMinutes != 0 {
		t.Errorf("stored worked minutes = %d, want 0", s.WorkedMinutes)
	}
	worked, obligatory, additional := s.RunningTotals(at("17:00"))
	if worked != 480 || obligatory != 0 || additional != 0 {
		t.Errorf("running totals = %d/%d/%d, want 480/0/0", worked, obligatory, additional)
	}

	if err := s.Apply(Event{Action: ActionAdditionalBreak, At: at("12:00")}); err != nil {
		t.Fatal(err)
	}
	worked, _, additional = s.RunningTotals(at("12:30"))
	if worked != 180 || additional != 30 {
		t.Errorf("running totals on break = %d worked, %d additional, want 180/30", worked, additional)
	}

	if err := s.Apply(Event{Action: ActionResume, At: at("12:30")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(Event{Action: ActionFinish, At: at("17:00")}); err != nil {
		t.Fatal(err)
	}
	worked, _, _ = s.RunningTotals(at("23:00"))
	if worked != s.WorkedMinutes {
		t.Errorf("finished session running totals = %d, want frozen %d", worked, s.WorkedMinutes)
	}
}

func TestSessionRejectsOutOfOrderEvents(t *testing.T) {
	s := &Session{State: StateNotStarted}
	if err := s.Apply(Event{Action: ActionStart, At: at("09:00")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(Event{Action: ActionFinish, At: at("08:00")}); !errors.Is(err, ErrEventOutOfOrder) {
		t.Errorf("out of order event = %v, want ErrEventOutOfOrder", err)
	}
}

func TestClockActionRequestValidation(t *testing.T) {
	valid := ClockActionRequest{
		Action:      "iniciar",
		Coordinates: &CoordinatesRequest{Latitude: 40.4, Longitude: -3.7},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
	if !valid.RequiresCoordinates() {
		t.Error("iniciar must require coordinates")
	}

	unknown := ClockActionRequest{Action: "pausa"}
	if err := unknown.Validate(); err == nil {
		t.Error("unknown action accepted")
	}

	badCoords := ClockActionRequest{
		Action:      "finalizar",
		Coordinates: &CoordinatesRequest{Latitude: 120, Longitude: 0},
	}
	if err := badCoords.Validate(); err == nil {
		t.Error("out of range latitude accepted")
	}

	resume := ClockActionRequest{Action: "reanudar"}
	if resume.RequiresCoordinates() {
		t.Error("reanudar must not require coordinates")
	}
}
