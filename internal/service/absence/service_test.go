package absence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
)

type stubInstanceRepo struct {
	schedule.InstanceRepository
	instance *schedule.Instance
}

func (s *stubInstanceRepo) GetByID(ctx context.Context, id string) (*schedule.Instance, error) {
	return s.instance, nil
}

type stubSessionRepo struct {
	attendance.SessionRepository
	hasSession bool
}

func (s *stubSessionRepo) ExistsForInstance(ctx context.Context, scheduleInstanceID string) (bool, error) {
	return s.hasSession, nil
}

type stubNoteRepo struct {
	absence.NoteRepository
	openExists bool
	createErr  error
}

func (s *stubNoteRepo) OpenOrApprovedExists(ctx context.Context, scheduleInstanceID string) (bool, error) {
	return s.openExists, nil
}

func (s *stubNoteRepo) Create(ctx context.Context, note *absence.Note) error {
	return s.createErr
}

type noopEmitter struct{}

func (noopEmitter) Emit(ctx context.Context, evt event.Event) {}

func pastInstance() *schedule.Instance {
	return &schedule.Instance{
		ID:     "7f4f3f8e-0000-4000-8000-000000000001",
		EndsAt: time.Now().UTC().Add(-48 * time.Hour),
		Status: schedule.StatusActive,
	}
}

func openRequest() absence.OpenNoteRequest {
	return absence.OpenNoteRequest{
		ScheduleInstanceID: "7f4f3f8e-0000-4000-8000-000000000001",
		ActorID:            "emp-1",
	}
}

func TestOpenNoteDuplicateRace(t *testing.T) {
	// A concurrent open slips past the existence pre-check; the unique
	// index rejects the second insert and the violation must surface as
	// the domain conflict, not an internal error.
	svc := NewAbsenceService(
		nil,
		&stubNoteRepo{createErr: &pgconn.PgError{Code: "23505"}},
		&stubInstanceRepo{instance: pastInstance()},
		&stubSessionRepo{},
		noopEmitter{},
	)

	_, err := svc.OpenNote(context.Background(), openRequest())
	require.ErrorIs(t, err, absence.ErrAbsenceNoteExists)
}

func TestOpenNoteRejectsExistingNote(t *testing.T) {
	svc := NewAbsenceService(
		nil,
		&stubNoteRepo{openExists: true},
		&stubInstanceRepo{instance: pastInstance()},
		&stubSessionRepo{},
		noopEmitter{},
	)

	_, err := svc.OpenNote(context.Background(), openRequest())
	require.ErrorIs(t, err, absence.ErrAbsenceNoteExists)
}

func TestOpenNoteRejectsRecordedAttendance(t *testing.T) {
	svc := NewAbsenceService(
		nil,
		&stubNoteRepo{},
		&stubInstanceRepo{instance: pastInstance()},
		&stubSessionRepo{hasSession: true},
		noopEmitter{},
	)

	_, err := svc.OpenNote(context.Background(), openRequest())
	require.ErrorIs(t, err, absence.ErrAttendanceRecorded)
}

func TestOpenNoteRejectsFutureInstance(t *testing.T) {
	in := pastInstance()
	in.EndsAt = time.Now().UTC().Add(4 * time.Hour)

	svc := NewAbsenceService(
		nil,
		&stubNoteRepo{},
		&stubInstanceRepo{instance: in},
		&stubSessionRepo{},
		noopEmitter{},
	)

	_, err := svc.OpenNote(context.Background(), openRequest())
	assert.ErrorIs(t, err, absence.ErrInstanceNotElapsed)
}
