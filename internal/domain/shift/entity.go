package shift

import "time"

// Shift is a reusable start/end/break time-of-day definition scoped to a
// center. Templates and schedule instances reference shifts, they never
// embed them; materialized instances copy the resolved instants instead.
type Shift struct {
	ID             string
	CenterID       string
	Name           string
	StartTime      time.Time // time-of-day, date part unused
	EndTime        time.Time // may be earlier than StartTime for overnight shifts
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
	Color          string // 6 hex digits, no leading '#'
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsOvernight reports whether the shift ends on the following calendar day.
func (s Shift) IsOvernight() bool {
	return minutesOfDay(s.EndTime) <= minutesOfDay(s.StartTime)
}

// DurationMinutes is the shift length on the normalized 24h cycle.
func (s Shift) DurationMinutes() int {
	return cycleMinutes(s.StartTime, s.EndTime)
}

// ResolveForDate projects the shift's times-of-day onto a calendar date,
// producing the absolute instants a schedule instance freezes. Overnight
// shifts roll the end, and any break instant past midnight, onto the next
// day.
func (s Shift) ResolveForDate(date time.Time) (startsAt, endsAt time.Time, breakStartsAt, breakEndsAt *time.Time) {
	startsAt = time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, date.Location())
	endsAt = startsAt.Add(time.Duration(cycleMinutes(s.StartTime, s.EndTime)) * time.Minute)

	if s.BreakStartTime != nil && s.BreakEndTime != nil {
		bs := startsAt.Add(time.Duration(startOffsetMinutes(s.StartTime, *s.BreakStartTime)) * time.Minute)
		be := startsAt.Add(time.Duration(startOffsetMinutes(s.StartTime, *s.BreakEndTime)) * time.Minute)
		breakStartsAt = &bs
		breakEndsAt = &be
	}
	return startsAt, endsAt, breakStartsAt, breakEndsAt
}

// Modality is the enumerated work mode a scheduled shift is performed under.
// Immutable reference data.
type Modality struct {
	ID   string
	Name string
}

const (
	ModalityOnSite = "on_site"
	ModalityRemote = "remote"
	ModalityHybrid = "hybrid"
)

var ModalityValues = []string{ModalityOnSite, ModalityRemote, ModalityHybrid}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// cycleMinutes measures from -> to on the 24h cycle, so an overnight span
// like 22:00 -> 06:00 yields 480 rather than a negative number. Equal
// endpoints measure as a full day.
func cycleMinutes(from, to time.Time) int {
	d := (minutesOfDay(to) - minutesOfDay(from)) % (24 * 60)
	if d <= 0 {
		d += 24 * 60
	}
	return d
}

// startOffsetMinutes measures how far past the shift start a time-of-day
// falls on the 24h cycle.
func startOffsetMinutes(start, t time.Time) int {
	d := (minutesOfDay(t) - minutesOfDay(start)) % (24 * 60)
	if d < 0 {
		d += 24 * 60
	}
	return d
}

// ValidateBreakWindow enforces the both-or-neither pairing and the strict
// nesting of the break inside [start, end), computed on cycle distance so
// overnight shifts validate the same way as day shifts.
func ValidateBreakWindow(start, end time.Time, breakStart, breakEnd *time.Time) error {
	if breakStart == nil && breakEnd == nil {
		return nil
	}
	if breakStart == nil || breakEnd == nil {
		return ErrInvalidBreakWindow
	}

	dur := cycleMinutes(start, end)
	bs := (minutesOfDay(*breakStart) - minutesOfDay(start)) % (24 * 60)
	if bs < 0 {
		bs += 24 * 60
	}
	be := (minutesOfDay(*breakEnd) - minutesOfDay(start)) % (24 * 60)
	if be < 0 {
		be += 24 * 60
	}

	if bs == 0 || be <= bs || be >= dur {
		return ErrInvalidBreakWindow
	}
	return nil
}
