package absence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
	"github.com/laupm3/workforce-backend-go/internal/repository/postgresql"
)

type absenceServiceImpl struct {
	db           *database.DB
	noteRepo     absence.NoteRepository
	instanceRepo schedule.InstanceRepository
	sessionRepo  attendance.SessionRepository
	emitter      event.Emitter
	now          func() time.Time
}

func NewAbsenceService(
	db *database.DB,
	noteRepo absence.NoteRepository,
	instanceRepo schedule.InstanceRepository,
	sessionRepo attendance.SessionRepository,
	emitter event.Emitter,
) absence.AbsenceService {
	return &absenceServiceImpl{
		db:           db,
		noteRepo:     noteRepo,
		instanceRepo: instanceRepo,
		sessionRepo:  sessionRepo,
		emitter:      emitter,
		now:          time.Now,
	}
}

// OpenNote implements absence.AbsenceService.
func (s *absenceServiceImpl) OpenNote(ctx context.Context, req absence.OpenNoteRequest) (absence.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.NoteResponse{}, err
	}

	in, err := s.instanceRepo.GetByID(ctx, req.ScheduleInstanceID)
	if err != nil {
		return absence.NoteResponse{}, err
	}
	if in.EndsAt.After(s.now().UTC()) {
		return absence.NoteResponse{}, absence.ErrInstanceNotElapsed
	}

	hasSession, err := s.sessionRepo.ExistsForInstance(ctx, in.ID)
	if err != nil {
		return absence.NoteResponse{}, err
	}
	if hasSession {
		return absence.NoteResponse{}, absence.ErrAttendanceRecorded
	}

	exists, err := s.noteRepo.OpenOrApprovedExists(ctx, in.ID)
	if err != nil {
		return absence.NoteResponse{}, err
	}
	if exists {
		return absence.NoteResponse{}, absence.ErrAbsenceNoteExists
	}

	note := &absence.Note{
		ScheduleInstanceID: &in.ID,
		Status:             absence.StatusPending,
		CreatedBy:          req.ActorID,
	}
	if req.Reason != nil {
		note.Reason = *req.Reason
	}

	// The pre-check gives a clean error on the common path; the partial
	// unique index on open notes per instance decides concurrent opens.
	if err := s.noteRepo.Create(ctx, note); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return absence.NoteResponse{}, absence.ErrAbsenceNoteExists
		}
		return absence.NoteResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeAbsenceNoteOpened,
		ActorID: req.ActorID,
		Data:    map[string]interface{}{"note_id": note.ID, "schedule_instance_id": in.ID},
	})

	return absence.NewNoteResponse(note), nil
}

// ResolveNote implements absence.AbsenceService.
func (s *absenceServiceImpl) ResolveNote(ctx context.Context, req absence.ResolveNoteRequest) (absence.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.NoteResponse{}, err
	}

	note, err := s.noteRepo.GetByID(ctx, req.NoteID)
	if err != nil {
		return absence.NoteResponse{}, err
	}

	if err := note.Resolve(*req.Approve, req.ActorID, req.Reason, s.now().UTC()); err != nil {
		return absence.NoteResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.noteRepo.Update(txCtx, note); err != nil {
			return err
		}
		if note.Status == absence.StatusApproved && note.ScheduleInstanceID != nil {
			return s.instanceRepo.MarkAbsence(txCtx, *note.ScheduleInstanceID, schedule.AbsenceJustified)
		}
		return nil
	})
	if err != nil {
		return absence.NoteResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeAbsenceNoteResolved,
		ActorID: req.ActorID,
		Data: map[string]interface{}{
			"note_id": note.ID,
			"status":  string(note.Status),
		},
	})

	return absence.NewNoteResponse(note), nil
}

// GetNote implements absence.AbsenceService.
func (s *absenceServiceImpl) GetNote(ctx context.Context, id string) (absence.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return absence.NoteResponse{}, err
	}
	return absence.NewNoteResponse(note), nil
}
