package absence

import (
	"context"
)

type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, id string) (*Note, error)
	// OpenOrApprovedExists reports whether the instance already has a
	// pending or approved note.
	OpenOrApprovedExists(ctx context.Context, scheduleInstanceID string) (bool, error)
	Update(ctx context.Context, note *Note) error
	// DetachFromInstances clears the instance reference on notes
	// pointing at any of the given instances, returning how many were
	// detached.
	DetachFromInstances(ctx context.Context, scheduleInstanceIDs []string) (int64, error)
}
