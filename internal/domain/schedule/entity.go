package schedule

import "time"

type InstanceStatus string

const (
	StatusActive    InstanceStatus = "active"
	StatusCancelled InstanceStatus = "cancelled"
)

// AbsenceMark is a reporting flag set by absence reconciliation; it never
// changes the instance's scheduling status.
type AbsenceMark string

const (
	AbsenceJustified   AbsenceMark = "justified"
	AbsenceUnjustified AbsenceMark = "unjustified"
)

// Instance is a concrete dated shift bound to a contract. Start/end/break
// instants are resolved from the shift at materialization time and frozen:
// later edits to the shift catalog do not rewrite them.
type Instance struct {
	ID            string
	ContractID    string
	Date          time.Time // working day, truncated to midnight
	ShiftID       string
	ModalityID    string
	StartsAt      time.Time
	EndsAt        time.Time // next calendar day for overnight shifts
	BreakStartsAt *time.Time
	BreakEndsAt   *time.Time
	Observation   string
	Status        InstanceStatus
	Absence       *AbsenceMark
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overlaps reports whether two instances intersect in absolute time.
// Intervals are half-open [StartsAt, EndsAt).
func (i Instance) Overlaps(other Instance) bool {
	return i.StartsAt.Before(other.EndsAt) && other.StartsAt.Before(i.EndsAt)
}

// FindOverlap validates a candidate set against itself and against the
// existing non-cancelled instances of the same contract. It returns the ids
// of the first conflicting pair found, or ok=false when the set is clean.
// Candidates replace any existing instance sharing their id, so bulk update
// revalidates against the remaining rows only.
func FindOverlap(candidates []Instance, existing []Instance) (a, b string, ok bool) {
	replaced := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		replaced[c.ID] = true
	}

	pool := make([]Instance, 0, len(candidates)+len(existing))
	pool = append(pool, candidates...)
	for _, e := range existing {
		if e.Status == StatusCancelled || replaced[e.ID] {
			continue
		}
		pool = append(pool, e)
	}

	for x := 0; x < len(pool); x++ {
		for y := x + 1; y < len(pool); y++ {
			if pool[x].Overlaps(pool[y]) {
				return pool[x].ID, pool[y].ID, true
			}
		}
	}
	return "", "", false
}
