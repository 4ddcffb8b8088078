package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
	"github.com/laupm3/workforce-backend-go/internal/pkg/lock"
	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
	"github.com/laupm3/workforce-backend-go/internal/repository/postgresql"
)

const clockLockTTL = 10 * time.Second

type attendanceServiceImpl struct {
	db           *database.DB
	sessionRepo  attendance.SessionRepository
	instanceRepo schedule.InstanceRepository
	locker       lock.Locker
	emitter      event.Emitter
	now          func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	sessionRepo attendance.SessionRepository,
	instanceRepo schedule.InstanceRepository,
	locker lock.Locker,
	emitter event.Emitter,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		db:           db,
		sessionRepo:  sessionRepo,
		instanceRepo: instanceRepo,
		locker:       locker,
		emitter:      emitter,
		now:          time.Now,
	}
}

func clockLockKey(employeeID string, day time.Time) string {
	return fmt.Sprintf("attendance:%s:%s", employeeID, day.Format("2006-01-02"))
}

// Clock implements attendance.AttendanceService.
func (s *attendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockActionRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}
	if req.RequiresCoordinates() && req.Coordinates == nil {
		return attendance.SessionResponse{}, attendance.ErrGeolocationRequired
	}

	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	key := clockLockKey(req.EmployeeID, day)
	acquired, err := s.locker.Lock(ctx, key, clockLockTTL)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to acquire clock lock: %w", err)
	}
	if !acquired {
		return attendance.SessionResponse{}, attendance.ErrClockBusy
	}
	defer func() {
		_ = s.locker.Unlock(ctx, key)
	}()

	session, err := s.sessionRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil && !errors.Is(err, attendance.ErrSessionNotFound) {
		return attendance.SessionResponse{}, err
	}

	action := attendance.Action(req.Action)
	isNew := session == nil
	if isNew {
		if action != attendance.ActionStart {
			return attendance.SessionResponse{}, &attendance.InvalidTransitionError{
				State:  attendance.StateNotStarted,
				Action: action,
			}
		}
		session = &attendance.Session{
			EmployeeID: req.EmployeeID,
			Date:       day,
			State:      attendance.StateNotStarted,
		}
		if err := s.linkInstance(ctx, session, req.ScheduleInstanceID); err != nil {
			return attendance.SessionResponse{}, err
		}
	}

	ev := attendance.Event{Action: action, At: now}
	if req.Coordinates != nil {
		lat, lng := req.Coordinates.Latitude, req.Coordinates.Longitude
		ev.Latitude = &lat
		ev.Longitude = &lng
	}

	if err := session.Apply(ev); err != nil {
		return attendance.SessionResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if isNew {
			return s.sessionRepo.Create(txCtx, session)
		}
		return s.sessionRepo.AppendEvent(txCtx, session, ev)
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeAttendanceStateChanged,
		ActorID: req.EmployeeID,
		Data: map[string]interface{}{
			"session_id": session.ID,
			"action":     req.Action,
			"state":      string(session.State),
		},
	})

	return attendance.NewSessionResponse(session), nil
}

// linkInstance binds the new session to its schedule instance and derives
// the obligatory-break eligibility from the frozen instants.
func (s *attendanceServiceImpl) linkInstance(ctx context.Context, session *attendance.Session, instanceID *string) error {
	if instanceID == nil {
		return nil
	}

	in, err := s.instanceRepo.GetByID(ctx, *instanceID)
	if err != nil {
		return err
	}

	session.ScheduleInstanceID = &in.ID
	if in.BreakStartsAt != nil {
		eligible := int(in.BreakStartsAt.Sub(in.StartsAt).Minutes())
		session.BreakEligibleAfterMin = &eligible
	}
	return nil
}

// Sessions implements attendance.AttendanceService.
func (s *attendanceServiceImpl) Sessions(ctx context.Context, employeeID string, dateFrom, dateTo string) ([]attendance.SessionResponse, error) {
	var errs validator.ValidationErrors
	from, fromOK := validator.IsValidDate(dateFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a valid date in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(dateTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a valid date in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	sessions, err := s.sessionRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, attendance.NewSessionResponse(&sessions[i]))
	}
	return responses, nil
}

// Today implements attendance.AttendanceService.
func (s *attendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.SessionResponse, error) {
	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	session, err := s.sessionRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	// Stored totals freeze at the last event; the today view reports the
	// clock as it stands now.
	session.WorkedMinutes, session.ObligatoryBreakMinutes, session.AdditionalBreakMinutes = session.RunningTotals(now)

	return attendance.NewSessionResponse(session), nil
}
