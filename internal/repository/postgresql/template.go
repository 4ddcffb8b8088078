package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/template"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// Create implements template.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t *template.Template) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_templates (id, name, description)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.Description).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create schedule template: %w", err)
	}

	if err := r.insertSlots(ctx, t); err != nil {
		return err
	}

	return nil
}

func (r *templateRepositoryImpl) insertSlots(ctx context.Context, t *template.Template) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_template_slots (id, template_id, weekday, shift_id, modality_id)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id
	`

	for i := range t.Slots {
		slot := &t.Slots[i]
		slot.TemplateID = t.ID
		err := q.QueryRow(ctx, query, t.ID, slot.Weekday, slot.ShiftID, slot.ModalityID).Scan(&slot.ID)
		if err != nil {
			return fmt.Errorf("failed to create template slot: %w", err)
		}
	}

	return nil
}

// GetByID implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string) (*template.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at, deleted_at
		FROM schedule_templates
		WHERE id = $1 AND deleted_at IS NULL
	`

	var t template.Template
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, template.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule template: %w", err)
	}

	slotsQuery := `
		SELECT id, template_id, weekday, shift_id, modality_id
		FROM schedule_template_slots
		WHERE template_id = $1
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, slotsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query template slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot template.Slot
		if err := rows.Scan(&slot.ID, &slot.TemplateID, &slot.Weekday, &slot.ShiftID, &slot.ModalityID); err != nil {
			return nil, fmt.Errorf("failed to scan template slot: %w", err)
		}
		t.Slots = append(t.Slots, slot)
	}

	return &t, nil
}

// List implements template.TemplateRepository.
func (r *templateRepositoryImpl) List(ctx context.Context, filter template.TemplateFilter) ([]template.Template, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM schedule_templates
		WHERE %s
	`, baseWhere)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count schedule templates: %w", err)
	}

	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, description, created_at, updated_at, deleted_at
		FROM schedule_templates
		WHERE %s
		ORDER BY name %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, argIdx, argIdx+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query schedule templates: %w", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		var t template.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan schedule template: %w", err)
		}
		templates = append(templates, t)
	}

	return templates, total, nil
}

// Update implements template.TemplateRepository.
func (r *templateRepositoryImpl) Update(ctx context.Context, t *template.Template) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_templates
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.Description, t.ID).Scan(&t.UpdatedAt)

	if err == pgx.ErrNoRows {
		return template.ErrTemplateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update schedule template: %w", err)
	}

	return nil
}

// ReplaceSlots implements template.TemplateRepository.
func (r *templateRepositoryImpl) ReplaceSlots(ctx context.Context, t *template.Template) error {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `
		DELETE FROM schedule_template_slots
		WHERE template_id = $1
	`

	if _, err := q.Exec(ctx, deleteQuery, t.ID); err != nil {
		return fmt.Errorf("failed to delete template slots: %w", err)
	}

	return r.insertSlots(ctx, t)
}

// SoftDelete implements template.TemplateRepository.
func (r *templateRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_templates
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}
