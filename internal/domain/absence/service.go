package absence

import (
	"context"
)

type AbsenceService interface {
	// OpenNote creates a pending note for a past schedule instance that
	// has no attendance session.
	OpenNote(ctx context.Context, req OpenNoteRequest) (NoteResponse, error)
	// ResolveNote approves or rejects a pending note. Approval marks
	// the linked schedule instance as a justified absence.
	ResolveNote(ctx context.Context, req ResolveNoteRequest) (NoteResponse, error)
	GetNote(ctx context.Context, id string) (NoteResponse, error)
}
