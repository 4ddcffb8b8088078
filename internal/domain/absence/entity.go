package absence

import (
	"time"
)

// Status is the absence note's resolution state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Note is an absence justification opened against a schedule instance
// that has no attendance recorded.
type Note struct {
	ID                 string
	ScheduleInstanceID *string
	Reason             string
	Status             Status
	CreatedBy          string
	ResolvedBy         *string
	ResolvedAt         *time.Time
	ResolutionReason   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Resolve transitions the note out of pending exactly once.
func (n *Note) Resolve(approve bool, resolverID string, reason *string, now time.Time) error {
	if n.Status != StatusPending {
		return ErrAlreadyResolved
	}
	if approve {
		n.Status = StatusApproved
	} else {
		n.Status = StatusRejected
	}
	n.ResolvedBy = &resolverID
	n.ResolvedAt = &now
	n.ResolutionReason = reason
	return nil
}
