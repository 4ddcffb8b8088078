package contract

import (
	"time"
)

// Contract is reference data supplied by the contract registry. The
// scheduling flows only read it to scope and validate instances.
type Contract struct {
	ID         string
	EmployeeID string
	CenterID   string
	ValidFrom  time.Time
	ValidTo    *time.Time
}

// Covers reports whether the calendar date falls inside the contract's
// validity window.
func (c *Contract) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(c.ValidFrom.Year(), c.ValidFrom.Month(), c.ValidFrom.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(from) {
		return false
	}
	if c.ValidTo != nil {
		to := time.Date(c.ValidTo.Year(), c.ValidTo.Month(), c.ValidTo.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(to) {
			return false
		}
	}
	return true
}
