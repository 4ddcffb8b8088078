package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `id, employee_id, schedule_instance_id, date, state,
	   worked_minutes, obligatory_break_minutes, additional_break_minutes,
	   break_eligible_after_min, closed_at, created_at, updated_at`

func scanSession(row pgx.Row, s *attendance.Session) error {
	return row.Scan(
		&s.ID, &s.EmployeeID, &s.ScheduleInstanceID, &s.Date, &s.State,
		&s.WorkedMinutes, &s.ObligatoryBreakMinutes, &s.AdditionalBreakMinutes,
		&s.BreakEligibleAfterMin, &s.ClosedAt, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, session *attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, schedule_instance_id, date, state,
			worked_minutes, obligatory_break_minutes, additional_break_minutes,
			break_eligible_after_min, closed_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.EmployeeID,
		session.ScheduleInstanceID,
		session.Date,
		session.State,
		session.WorkedMinutes,
		session.ObligatoryBreakMinutes,
		session.AdditionalBreakMinutes,
		session.BreakEligibleAfterMin,
		session.ClosedAt,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create attendance session: %w", err)
	}

	return r.insertEvents(ctx, session.ID, session.Events)
}

func (r *sessionRepositoryImpl) insertEvents(ctx context.Context, sessionID string, events []attendance.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, session_id, action, at, latitude, longitude)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range events {
		ev := &events[i]
		if ev.ID != "" {
			continue
		}
		err := q.QueryRow(ctx, query, sessionID, ev.Action, ev.At, ev.Latitude, ev.Longitude).Scan(&ev.ID)
		if err != nil {
			return fmt.Errorf("failed to create attendance event: %w", err)
		}
	}

	return nil
}

func (r *sessionRepositoryImpl) loadEvents(ctx context.Context, s *attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, at, latitude, longitude
		FROM attendance_events
		WHERE session_id = $1
		ORDER BY at ASC
	`

	rows, err := q.Query(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(&ev.ID, &ev.Action, &ev.At, &ev.Latitude, &ev.Longitude); err != nil {
			return fmt.Errorf("failed to scan attendance event: %w", err)
		}
		s.Events = append(s.Events, ev)
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var s attendance.Session
	err := scanSession(q.QueryRow(ctx, query, employeeID, date), &s)

	if err == pgx.ErrNoRows {
		return nil, attendance.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance session: %w", err)
	}

	if err := r.loadEvents(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// GetByID implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE id = $1
	`

	var s attendance.Session
	err := scanSession(q.QueryRow(ctx, query, id), &s)

	if err == pgx.ErrNoRows {
		return nil, attendance.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance session: %w", err)
	}

	if err := r.loadEvents(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// ListByEmployee implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := scanSession(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, s)
	}
	rows.Close()

	for i := range sessions {
		if err := r.loadEvents(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

// AppendEvent implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) AppendEvent(ctx context.Context, session *attendance.Session, ev attendance.Event) error {
	q := GetQuerier(ctx, r.db)

	eventQuery := `
		INSERT INTO attendance_events (id, session_id, action, at, latitude, longitude)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := q.QueryRow(ctx, eventQuery, session.ID, ev.Action, ev.At, ev.Latitude, ev.Longitude).Scan(&ev.ID); err != nil {
		return fmt.Errorf("failed to create attendance event: %w", err)
	}

	sessionQuery := `
		UPDATE attendance_sessions
		SET state = $1, worked_minutes = $2, obligatory_break_minutes = $3,
			additional_break_minutes = $4, closed_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, sessionQuery,
		session.State,
		session.WorkedMinutes,
		session.ObligatoryBreakMinutes,
		session.AdditionalBreakMinutes,
		session.ClosedAt,
		session.ID,
	).Scan(&session.UpdatedAt)

	if err == pgx.ErrNoRows {
		return attendance.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update attendance session: %w", err)
	}

	return nil
}

// ExistsForInstance implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ExistsForInstance(ctx context.Context, scheduleInstanceID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendance_sessions
			WHERE schedule_instance_id = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, scheduleInstanceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance session: %w", err)
	}

	return exists, nil
}

// DetachFromInstances implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) DetachFromInstances(ctx context.Context, scheduleInstanceIDs []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET schedule_instance_id = NULL, updated_at = NOW()
		WHERE schedule_instance_id = ANY($1)
	`

	tag, err := q.Exec(ctx, query, scheduleInstanceIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to detach attendance sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
