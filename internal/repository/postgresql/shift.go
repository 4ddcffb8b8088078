package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, center_id, name, start_time, end_time, break_start_time, break_end_time,
	   color, created_at, updated_at, deleted_at`

func scanShift(row pgx.Row, s *shift.Shift) error {
	return row.Scan(
		&s.ID, &s.CenterID, &s.Name, &s.StartTime, &s.EndTime, &s.BreakStartTime, &s.BreakEndTime,
		&s.Color, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, center_id, name, start_time, end_time, break_start_time, break_end_time, color)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.CenterID,
		s.Name,
		s.StartTime,
		s.EndTime,
		s.BreakStartTime,
		s.BreakEndTime,
		s.Color,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string, centerID string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND center_id = $2 AND deleted_at IS NULL
	`

	var s shift.Shift
	err := scanShift(q.QueryRow(ctx, query, id, centerID), &s)

	if err == pgx.ErrNoRows {
		return nil, shift.ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return &s, nil
}

// GetByCenterID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByCenterID(ctx context.Context, centerID string, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "center_id = $1 AND deleted_at IS NULL"
	args := []interface{}{centerID}
	argIdx := 2

	if filter.Name != nil {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM shifts
		WHERE %s
	`, baseWhere)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	orderByField := "name"
	switch filter.SortBy {
	case "start_time":
		orderByField = "start_time"
	case "created_at":
		orderByField = "created_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM shifts
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, shiftColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := scanShift(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, total, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3,
			break_start_time = $4, break_end_time = $5, color = $6,
			updated_at = NOW()
		WHERE id = $7 AND center_id = $8 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name,
		s.StartTime,
		s.EndTime,
		s.BreakStartTime,
		s.BreakEndTime,
		s.Color,
		s.ID,
		s.CenterID,
	).Scan(&s.UpdatedAt)

	if err == pgx.ErrNoRows {
		return shift.ErrShiftNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}
