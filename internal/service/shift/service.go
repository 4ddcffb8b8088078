package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type shiftServiceImpl struct {
	db           *database.DB
	shiftRepo    shift.ShiftRepository
	modalityRepo shift.ModalityRepository
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository, modalityRepo shift.ModalityRepository) shift.ShiftService {
	return &shiftServiceImpl{
		db:           db,
		shiftRepo:    shiftRepo,
		modalityRepo: modalityRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *shiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity, err := req.ToEntity()
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.shiftRepo.Create(ctx, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.NewShiftResponse(entity), nil
}

// GetShift implements shift.ShiftService.
func (s *shiftServiceImpl) GetShift(ctx context.Context, id string, centerID string) (shift.ShiftResponse, error) {
	entity, err := s.shiftRepo.GetByID(ctx, id, centerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(entity), nil
}

// ListShifts implements shift.ShiftService.
func (s *shiftServiceImpl) ListShifts(ctx context.Context, centerID string, filter shift.ShiftFilter) (shift.ListShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftResponse{}, err
	}

	shifts, total, err := s.shiftRepo.GetByCenterID(ctx, centerID, filter)
	if err != nil {
		return shift.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	return shift.NewListShiftResponse(shifts, total, filter.Page, filter.Limit), nil
}

// UpdateShift implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity, err := s.shiftRepo.GetByID(ctx, req.ID, req.CenterID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := req.ApplyTo(entity); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := shift.ValidateBreakWindow(entity.StartTime, entity.EndTime, entity.BreakStartTime, entity.BreakEndTime); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.shiftRepo.Update(ctx, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift.NewShiftResponse(entity), nil
}

// ListModalities implements shift.ShiftService.
func (s *shiftServiceImpl) ListModalities(ctx context.Context) ([]shift.ModalityResponse, error) {
	modalities, err := s.modalityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modalities: %w", err)
	}

	responses := make([]shift.ModalityResponse, 0, len(modalities))
	for _, m := range modalities {
		responses = append(responses, shift.ModalityResponse{ID: m.ID, Name: m.Name})
	}

	return responses, nil
}
