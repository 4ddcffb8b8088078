package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/domain/template"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
	"github.com/laupm3/workforce-backend-go/internal/repository/postgresql"
)

type templateServiceImpl struct {
	db           *database.DB
	templateRepo template.TemplateRepository
	shiftRepo    shift.ShiftRepository
	modalityRepo shift.ModalityRepository
	emitter      event.Emitter
}

func NewTemplateService(
	db *database.DB,
	templateRepo template.TemplateRepository,
	shiftRepo shift.ShiftRepository,
	modalityRepo shift.ModalityRepository,
	emitter event.Emitter,
) template.TemplateService {
	return &templateServiceImpl{
		db:           db,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		modalityRepo: modalityRepo,
		emitter:      emitter,
	}
}

// checkSlotReferences verifies every shift and modality a slot points at
// exists. Slot pairing was already validated by the request.
func (s *templateServiceImpl) checkSlotReferences(ctx context.Context, centerID string, slots []template.Slot) error {
	for _, slot := range slots {
		if slot.ShiftID == nil {
			continue
		}
		if _, err := s.shiftRepo.GetByID(ctx, *slot.ShiftID, centerID); err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return template.ErrUnknownReference
			}
			return fmt.Errorf("failed to check shift reference: %w", err)
		}
		if _, err := s.modalityRepo.GetByID(ctx, *slot.ModalityID); err != nil {
			if errors.Is(err, shift.ErrModalityNotFound) {
				return template.ErrUnknownReference
			}
			return fmt.Errorf("failed to check modality reference: %w", err)
		}
	}
	return nil
}

// CreateTemplate implements template.TemplateService.
func (s *templateServiceImpl) CreateTemplate(ctx context.Context, actorID string, centerID string, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	entity := req.ToEntity()
	if err := s.checkSlotReferences(ctx, centerID, entity.Slots); err != nil {
		return template.TemplateResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.templateRepo.Create(txCtx, entity); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return template.ErrTemplateNameExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeTemplateCreated,
		ActorID: actorID,
		Data:    map[string]interface{}{"template_id": entity.ID, "name": entity.Name},
	})

	return template.NewTemplateResponse(entity), nil
}

// GetTemplate implements template.TemplateService.
func (s *templateServiceImpl) GetTemplate(ctx context.Context, id string) (template.TemplateResponse, error) {
	entity, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	return template.NewTemplateResponse(entity), nil
}

// ListTemplates implements template.TemplateService.
func (s *templateServiceImpl) ListTemplates(ctx context.Context, filter template.TemplateFilter) (template.ListTemplateResponse, error) {
	if err := filter.Validate(); err != nil {
		return template.ListTemplateResponse{}, err
	}

	templates, total, err := s.templateRepo.List(ctx, filter)
	if err != nil {
		return template.ListTemplateResponse{}, fmt.Errorf("failed to list templates: %w", err)
	}

	return template.NewListTemplateResponse(templates, total, filter.Page, filter.Limit), nil
}

// UpdateTemplate implements template.TemplateService.
func (s *templateServiceImpl) UpdateTemplate(ctx context.Context, actorID string, centerID string, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	entity, err := s.templateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	entity.Name = req.Name
	entity.Description = req.Description
	entity.Slots = nil
	for _, slot := range req.Slots {
		entity.Slots = append(entity.Slots, template.Slot{
			TemplateID: entity.ID,
			Weekday:    *slot.Weekday,
			ShiftID:    slot.ShiftID,
			ModalityID: slot.ModalityID,
		})
	}

	if err := s.checkSlotReferences(ctx, centerID, entity.Slots); err != nil {
		return template.TemplateResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.templateRepo.Update(txCtx, entity); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return template.ErrTemplateNameExists
			}
			return err
		}
		return s.templateRepo.ReplaceSlots(txCtx, entity)
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeTemplateUpdated,
		ActorID: actorID,
		Data:    map[string]interface{}{"template_id": entity.ID, "name": entity.Name},
	})

	return template.NewTemplateResponse(entity), nil
}

// DeleteTemplate implements template.TemplateService.
func (s *templateServiceImpl) DeleteTemplate(ctx context.Context, actorID string, id string) error {
	if err := s.templateRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.emitter.Emit(ctx, event.Event{
		Type:    event.TypeTemplateDeleted,
		ActorID: actorID,
		Data:    map[string]interface{}{"template_id": id},
	})

	return nil
}
