package template

import "time"

// Template is a named weekly pattern: up to one (shift, modality) pair per
// weekday. Materialization into dated schedule instances is a separate
// explicit step, so editing or deleting a template never rewrites history.
type Template struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	Slots []Slot
}

// Slot assigns a shift and a modality to one weekday. The pair is
// both-or-neither; an empty slot simply marks the weekday as unscheduled.
type Slot struct {
	ID         string
	TemplateID string
	Weekday    int // 0=Sunday ... 6=Saturday
	ShiftID    *string
	ModalityID *string
}

// IsEmpty reports whether the slot carries no assignment.
func (s Slot) IsEmpty() bool {
	return s.ShiftID == nil && s.ModalityID == nil
}

// SlotFor returns the slot assigned to the given weekday, if any.
func (t Template) SlotFor(weekday int) (Slot, bool) {
	for _, s := range t.Slots {
		if s.Weekday == weekday && !s.IsEmpty() {
			return s, true
		}
	}
	return Slot{}, false
}
