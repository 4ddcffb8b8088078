package shift

import (
	"testing"
	"time"
)

func tod(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", s, err)
	}
	return parsed
}

func todPtr(t *testing.T, s string) *time.Time {
	v := tod(t, s)
	return &v
}

func TestValidateBreakWindow(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		breakStart *string
		breakEnd   *string
		wantErr    bool
	}{
		{name: "no break", start: "09:00", end: "17:00", wantErr: false},
		{name: "nested break", start: "09:00", end: "17:00", breakStart: strPtr("13:00"), breakEnd: strPtr("13:30"), wantErr: false},
		{name: "only start", start: "09:00", end: "17:00", breakStart: strPtr("13:00"), wantErr: true},
		{name: "only end", start: "09:00", end: "17:00", breakEnd: strPtr("13:30"), wantErr: true},
		{name: "break at shift start", start: "09:00", end: "17:00", breakStart: strPtr("09:00"), breakEnd: strPtr("09:30"), wantErr: true},
		{name: "break ends at shift end", start: "09:00", end: "17:00", breakStart: strPtr("16:00"), breakEnd: strPtr("17:00"), wantErr: true},
		{name: "break outside shift", start: "09:00", end: "17:00", breakStart: strPtr("18:00"), breakEnd: strPtr("18:30"), wantErr: true},
		{name: "inverted break", start: "09:00", end: "17:00", breakStart: strPtr("14:00"), breakEnd: strPtr("13:00"), wantErr: true},
		{name: "overnight nested after midnight", start: "22:00", end: "06:00", breakStart: strPtr("02:00"), breakEnd: strPtr("02:30"), wantErr: false},
		{name: "overnight nested before midnight", start: "22:00", end: "06:00", breakStart: strPtr("23:30"), breakEnd: strPtr("23:45"), wantErr: false},
		{name: "overnight break outside", start: "22:00", end: "06:00", breakStart: strPtr("12:00"), breakEnd: strPtr("12:30"), wantErr: true},
		{name: "overnight break crossing end", start: "22:00", end: "06:00", breakStart: strPtr("05:30"), breakEnd: strPtr("06:30"), wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var bs, be *time.Time
			if c.breakStart != nil {
				bs = todPtr(t, *c.breakStart)
			}
			if c.breakEnd != nil {
				be = todPtr(t, *c.breakEnd)
			}

			err := ValidateBreakWindow(tod(t, c.start), tod(t, c.end), bs, be)
			if c.wantErr && err == nil {
				t.Errorf("expected ErrInvalidBreakWindow, got nil")
			}
			if !c.wantErr && err != nil {
				t.Errorf("expected nil, got %v", err)
			}
		})
	}
}

func TestShiftOvernightAndDuration(t *testing.T) {
	day := Shift{StartTime: tod(t, "09:00"), EndTime: tod(t, "17:00")}
	if day.IsOvernight() {
		t.Error("09:00-17:00 reported overnight")
	}
	if got := day.DurationMinutes(); got != 480 {
		t.Errorf("day duration = %d, want 480", got)
	}

	night := Shift{StartTime: tod(t, "22:00"), EndTime: tod(t, "06:00")}
	if !night.IsOvernight() {
		t.Error("22:00-06:00 not reported overnight")
	}
	if got := night.DurationMinutes(); got != 480 {
		t.Errorf("night duration = %d, want 480", got)
	}
}

func TestShiftResolveForDate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	day := Shift{
		StartTime:      tod(t, "09:00"),
		EndTime:        tod(t, "17:00"),
		BreakStartTime: todPtr(t, "13:00"),
		BreakEndTime:   todPtr(t, "13:30"),
	}
	start, end, bs, be := day.ResolveForDate(date)
	if want := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("day start = %v, want %v", start, want)
	}
	if want := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("day end = %v, want %v", end, want)
	}
	if bs == nil || be == nil {
		t.Fatal("day break instants missing")
	}
	if want := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC); !bs.Equal(want) {
		t.Errorf("day break start = %v, want %v", bs, want)
	}
	if want := time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC); !be.Equal(want) {
		t.Errorf("day break end = %v, want %v", be, want)
	}

	night := Shift{
		StartTime:      tod(t, "22:00"),
		EndTime:        tod(t, "06:00"),
		BreakStartTime: todPtr(t, "02:00"),
		BreakEndTime:   todPtr(t, "02:30"),
	}
	start, end, bs, be = night.ResolveForDate(date)
	if want := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("night start = %v, want %v", start, want)
	}
	if want := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("night end = %v, want %v", end, want)
	}
	if bs == nil || be == nil {
		t.Fatal("night break instants missing")
	}
	if want := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC); !bs.Equal(want) {
		t.Errorf("night break start = %v, want %v", bs, want)
	}
	if want := time.Date(2025, 3, 11, 2, 30, 0, 0, time.UTC); !be.Equal(want) {
		t.Errorf("night break end = %v, want %v", be, want)
	}

	bare := Shift{StartTime: tod(t, "09:00"), EndTime: tod(t, "17:00")}
	_, _, bs, be = bare.ResolveForDate(date)
	if bs != nil || be != nil {
		t.Error("breakless shift resolved break instants")
	}
}

func strPtr(s string) *string { return &s }
