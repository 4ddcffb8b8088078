package attendance

import (
	"context"
	"time"
)

type SessionRepository interface {
	// Create persists a new session together with its first event.
	Create(ctx context.Context, session *Session) error
	// GetByEmployeeAndDate returns the session for an employee on a
	// calendar day, or ErrSessionNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Session, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	// ListByEmployee returns the employee's sessions between two calendar
	// days inclusive, events included, ordered by date.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Session, error)
	// AppendEvent stores a new event and the session's recomputed state
	// and totals in one write.
	AppendEvent(ctx context.Context, session *Session, ev Event) error
	// ExistsForInstance reports whether any session references the
	// schedule instance.
	ExistsForInstance(ctx context.Context, scheduleInstanceID string) (bool, error)
	// DetachFromInstances clears the instance reference on sessions
	// pointing at any of the given instances, returning how many were
	// detached.
	DetachFromInstances(ctx context.Context, scheduleInstanceIDs []string) (int64, error)
}
