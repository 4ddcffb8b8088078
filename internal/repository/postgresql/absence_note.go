package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) absence.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

const noteColumns = `id, schedule_instance_id, reason, status, created_by,
	   resolved_by, resolved_at, resolution_reason, created_at, updated_at`

func scanNote(row pgx.Row, n *absence.Note) error {
	return row.Scan(
		&n.ID, &n.ScheduleInstanceID, &n.Reason, &n.Status, &n.CreatedBy,
		&n.ResolvedBy, &n.ResolvedAt, &n.ResolutionReason, &n.CreatedAt, &n.UpdatedAt,
	)
}

// Create implements absence.NoteRepository.
func (r *noteRepositoryImpl) Create(ctx context.Context, note *absence.Note) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_notes (id, schedule_instance_id, reason, status, created_by)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		note.ScheduleInstanceID,
		note.Reason,
		note.Status,
		note.CreatedBy,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create absence note: %w", err)
	}

	return nil
}

// GetByID implements absence.NoteRepository.
func (r *noteRepositoryImpl) GetByID(ctx context.Context, id string) (*absence.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + noteColumns + `
		FROM absence_notes
		WHERE id = $1
	`

	var n absence.Note
	err := scanNote(q.QueryRow(ctx, query, id), &n)

	if err == pgx.ErrNoRows {
		return nil, absence.ErrAbsenceNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get absence note: %w", err)
	}

	return &n, nil
}

// OpenOrApprovedExists implements absence.NoteRepository.
func (r *noteRepositoryImpl) OpenOrApprovedExists(ctx context.Context, scheduleInstanceID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM absence_notes
			WHERE schedule_instance_id = $1
			  AND status IN ($2, $3)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, scheduleInstanceID, absence.StatusPending, absence.StatusApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check absence note: %w", err)
	}

	return exists, nil
}

// Update implements absence.NoteRepository.
func (r *noteRepositoryImpl) Update(ctx context.Context, note *absence.Note) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_notes
		SET status = $1, resolved_by = $2, resolved_at = $3, resolution_reason = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		note.Status,
		note.ResolvedBy,
		note.ResolvedAt,
		note.ResolutionReason,
		note.ID,
	).Scan(&note.UpdatedAt)

	if err == pgx.ErrNoRows {
		return absence.ErrAbsenceNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update absence note: %w", err)
	}

	return nil
}

// DetachFromInstances implements absence.NoteRepository.
func (r *noteRepositoryImpl) DetachFromInstances(ctx context.Context, scheduleInstanceIDs []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_notes
		SET schedule_instance_id = NULL, updated_at = NOW()
		WHERE schedule_instance_id = ANY($1)
	`

	tag, err := q.Exec(ctx, query, scheduleInstanceIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to detach absence notes: %w", err)
	}

	return tag.RowsAffected(), nil
}
