package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/domain/contract"
	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/domain/template"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
	"github.com/laupm3/workforce-backend-go/internal/repository/postgresql"
)

type scheduleServiceImpl struct {
	db           *database.DB
	instanceRepo schedule.InstanceRepository
	templateRepo template.TemplateRepository
	shiftRepo    shift.ShiftRepository
	contractRepo contract.ContractRepository
	sessionRepo  attendance.SessionRepository
	noteRepo     absence.NoteRepository
	emitter      event.Emitter
}

func NewScheduleService(
	db *database.DB,
	instanceRepo schedule.InstanceRepository,
	templateRepo template.TemplateRepository,
	shiftRepo shift.ShiftRepository,
	contractRepo contract.ContractRepository,
	sessionRepo attendance.SessionRepository,
	noteRepo absence.NoteRepository,
	emitter event.Emitter,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:           db,
		instanceRepo: instanceRepo,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		contractRepo: contractRepo,
		sessionRepo:  sessionRepo,
		noteRepo:     noteRepo,
		emitter:      emitter,
	}
}

// shiftCache avoids refetching the same shift while expanding a range.
type shiftCache struct {
	repo     shift.ShiftRepository
	centerID string
	shifts   map[string]*shift.Shift
}

func newShiftCache(repo shift.ShiftRepository, centerID string) *shiftCache {
	return &shiftCache{repo: repo, centerID: centerID, shifts: make(map[string]*shift.Shift)}
}

func (c *shiftCache) get(ctx context.Context, id string) (*shift.Shift, error) {
	if s, ok := c.shifts[id]; ok {
		return s, nil
	}
	s, err := c.repo.GetByID(ctx, id, c.centerID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return nil, schedule.ErrUnknownShiftReference
		}
		return nil, err
	}
	c.shifts[id] = s
	return s, nil
}

// materialize resolves a shift assignment for one date into an instance
// with frozen instants. Ids are assigned here so a whole batch can be
// cross-checked for overlaps before anything is written.
func materialize(s *shift.Shift, contractID, modalityID, observation string, date time.Time) schedule.Instance {
	startsAt, endsAt, breakStartsAt, breakEndsAt := s.ResolveForDate(date)
	return schedule.Instance{
		ID:            uuid.NewString(),
		ContractID:    contractID,
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		ShiftID:       s.ID,
		ModalityID:    modalityID,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		BreakStartsAt: breakStartsAt,
		BreakEndsAt:   breakEndsAt,
		Observation:   observation,
		Status:        schedule.StatusActive,
	}
}

// mapInstanceWriteError translates the exclusion constraint backing the
// no-overlap invariant into the domain conflict. In-memory validation runs
// first; the constraint decides writes that race past it.
func mapInstanceWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" { // exclusion_violation
		return schedule.ErrOverlappingSchedule
	}
	return err
}

// checkOverlap validates candidates against themselves and the contract's
// surrounding instances. The lookup window is padded a day on each side so
// overnight tails are included.
func (s *scheduleServiceImpl) checkOverlap(ctx context.Context, contractID string, candidates []schedule.Instance) error {
	if len(candidates) == 0 {
		return nil
	}

	minDate, maxDate := candidates[0].Date, candidates[0].Date
	for _, c := range candidates[1:] {
		if c.Date.Before(minDate) {
			minDate = c.Date
		}
		if c.Date.After(maxDate) {
			maxDate = c.Date
		}
	}

	existing, err := s.instanceRepo.ListByContract(ctx, contractID,
		minDate.AddDate(0, 0, -1), maxDate.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("failed to load surrounding instances: %w", err)
	}

	if a, b, found := schedule.FindOverlap(candidates, existing); found {
		return fmt.Errorf("%w: instances %s and %s intersect", schedule.ErrOverlappingSchedule, a, b)
	}
	return nil
}

// GenerateFromTemplate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GenerateFromTemplate(ctx context.Context, req schedule.GenerateScheduleRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	con, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	tmpl, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.DateFrom)
	to, _ := time.Parse("2006-01-02", req.DateTo)

	cache := newShiftCache(s.shiftRepo, con.CenterID)
	var candidates []schedule.Instance

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		slot, ok := tmpl.SlotFor(int(date.Weekday()))
		if !ok {
			continue
		}
		if !con.Covers(date) {
			return schedule.BatchResponse{}, contract.ErrOutsideContractValidity
		}

		sh, err := cache.get(ctx, *slot.ShiftID)
		if err != nil {
			return schedule.BatchResponse{}, err
		}
		candidates = append(candidates, materialize(sh, con.ID, *slot.ModalityID, "", date))
	}

	if len(candidates) == 0 {
		return schedule.BatchResponse{}, schedule.ErrNothingToGenerate
	}

	if err := s.checkOverlap(ctx, con.ID, candidates); err != nil {
		return schedule.BatchResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.instanceRepo.BulkInsert(txCtx, candidates); err != nil {
			return mapInstanceWriteError(err)
		}
		return nil
	})
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeScheduleBatchGenerated,
		ActorID: req.ActorID,
		Data: map[string]interface{}{
			"contract_id": con.ID,
			"template_id": tmpl.ID,
			"date_from":   req.DateFrom,
			"date_to":     req.DateTo,
			"count":       len(candidates),
		},
	})

	return schedule.NewBatchResponse(candidates, nil), nil
}

// buildItems resolves ad-hoc dated assignments into candidate instances.
func (s *scheduleServiceImpl) buildItems(ctx context.Context, con *contract.Contract, items []schedule.InstanceItemRequest) ([]schedule.Instance, error) {
	cache := newShiftCache(s.shiftRepo, con.CenterID)
	candidates := make([]schedule.Instance, 0, len(items))

	for _, item := range items {
		date, _ := time.Parse("2006-01-02", item.Date)
		if !con.Covers(date) {
			return nil, contract.ErrOutsideContractValidity
		}
		sh, err := cache.get(ctx, item.ShiftID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, materialize(sh, con.ID, item.ModalityID, item.Observation, date))
	}
	return candidates, nil
}

// BulkCreate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) BulkCreate(ctx context.Context, req schedule.BulkCreateScheduleRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	con, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	candidates, err := s.buildItems(ctx, con, req.Items)
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	if err := s.checkOverlap(ctx, con.ID, candidates); err != nil {
		return schedule.BatchResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.instanceRepo.BulkInsert(txCtx, candidates); err != nil {
			return mapInstanceWriteError(err)
		}
		return nil
	})
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeScheduleBatchGenerated,
		ActorID: req.ActorID,
		Data:    map[string]interface{}{"contract_id": con.ID, "count": len(candidates)},
	})

	return schedule.NewBatchResponse(candidates, nil), nil
}

// BulkUpdate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) BulkUpdate(ctx context.Context, req schedule.BulkUpdateScheduleRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	con, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	ids := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ID)
	}
	current, err := s.instanceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return schedule.BatchResponse{}, err
	}
	currentByID := make(map[string]schedule.Instance, len(current))
	for _, in := range current {
		currentByID[in.ID] = in
	}

	items := make([]schedule.InstanceItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		existing, ok := currentByID[item.ID]
		if !ok || existing.ContractID != con.ID {
			return schedule.BatchResponse{}, schedule.ErrInstanceNotFound
		}
		items = append(items, item.InstanceItemRequest)
	}

	candidates, err := s.buildItems(ctx, con, items)
	if err != nil {
		return schedule.BatchResponse{}, err
	}
	for i := range candidates {
		candidates[i].ID = req.Items[i].ID
	}

	if err := s.checkOverlap(ctx, con.ID, candidates); err != nil {
		return schedule.BatchResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for i := range candidates {
			if err := s.instanceRepo.Update(txCtx, &candidates[i]); err != nil {
				return mapInstanceWriteError(err)
			}
		}
		return nil
	})
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeScheduleBatchUpdated,
		ActorID: req.ActorID,
		Data:    map[string]interface{}{"contract_id": con.ID, "count": len(candidates)},
	})

	return schedule.NewBatchResponse(candidates, nil), nil
}

// BulkDelete implements schedule.ScheduleService.
func (s *scheduleServiceImpl) BulkDelete(ctx context.Context, req schedule.BulkDeleteScheduleRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	instances, err := s.instanceRepo.GetByIDs(ctx, req.IDs)
	if err != nil {
		return schedule.BatchResponse{}, err
	}
	if len(instances) != len(req.IDs) {
		return schedule.BatchResponse{}, schedule.ErrInstanceNotFound
	}

	var warnings []string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.instanceRepo.SoftCancel(txCtx, req.IDs); err != nil {
			return err
		}

		detachedSessions, err := s.sessionRepo.DetachFromInstances(txCtx, req.IDs)
		if err != nil {
			return err
		}
		if detachedSessions > 0 {
			warnings = append(warnings, fmt.Sprintf("%d attendance session(s) left orphaned by this delete", detachedSessions))
		}

		detachedNotes, err := s.noteRepo.DetachFromInstances(txCtx, req.IDs)
		if err != nil {
			return err
		}
		if detachedNotes > 0 {
			warnings = append(warnings, fmt.Sprintf("%d absence note(s) left orphaned by this delete", detachedNotes))
		}
		return nil
	})
	if err != nil {
		return schedule.BatchResponse{}, err
	}

	for i := range instances {
		instances[i].Status = schedule.StatusCancelled
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeScheduleBatchDeleted,
		ActorID: req.ActorID,
		Data:    map[string]interface{}{"count": len(req.IDs), "warnings": len(warnings)},
	})

	return schedule.NewBatchResponse(instances, warnings), nil
}

// GetInstance implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetInstance(ctx context.Context, id string) (schedule.InstanceResponse, error) {
	in, err := s.instanceRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.InstanceResponse{}, err
	}
	return schedule.NewInstanceResponse(in), nil
}

// ListInstances implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListInstances(ctx context.Context, filter schedule.InstanceFilter) ([]schedule.InstanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", filter.DateFrom)
	to, _ := time.Parse("2006-01-02", filter.DateTo)

	instances, err := s.instanceRepo.ListByContract(ctx, filter.ContractID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule instances: %w", err)
	}

	responses := make([]schedule.InstanceResponse, 0, len(instances))
	for i := range instances {
		responses = append(responses, schedule.NewInstanceResponse(&instances[i]))
	}
	return responses, nil
}
