package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type instanceRepositoryImpl struct {
	db *database.DB
}

func NewInstanceRepository(db *database.DB) schedule.InstanceRepository {
	return &instanceRepositoryImpl{db: db}
}

const instanceColumns = `id, contract_id, date, shift_id, modality_id, starts_at, ends_at,
	   break_starts_at, break_ends_at, observation, status, absence_mark, created_at, updated_at`

func scanInstance(row pgx.Row, in *schedule.Instance) error {
	return row.Scan(
		&in.ID, &in.ContractID, &in.Date, &in.ShiftID, &in.ModalityID, &in.StartsAt, &in.EndsAt,
		&in.BreakStartsAt, &in.BreakEndsAt, &in.Observation, &in.Status, &in.Absence, &in.CreatedAt, &in.UpdatedAt,
	)
}

// BulkInsert implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) BulkInsert(ctx context.Context, instances []schedule.Instance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_instances (
			id, contract_id, date, shift_id, modality_id, starts_at, ends_at,
			break_starts_at, break_ends_at, observation, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	for i := range instances {
		in := &instances[i]
		err := q.QueryRow(ctx, query,
			in.ID,
			in.ContractID,
			in.Date,
			in.ShiftID,
			in.ModalityID,
			in.StartsAt,
			in.EndsAt,
			in.BreakStartsAt,
			in.BreakEndsAt,
			in.Observation,
			in.Status,
		).Scan(&in.CreatedAt, &in.UpdatedAt)

		if err != nil {
			return fmt.Errorf("failed to create schedule instance: %w", err)
		}
	}

	return nil
}

// GetByID implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) GetByID(ctx context.Context, id string) (*schedule.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instanceColumns + `
		FROM schedule_instances
		WHERE id = $1
	`

	var in schedule.Instance
	err := scanInstance(q.QueryRow(ctx, query, id), &in)

	if err == pgx.ErrNoRows {
		return nil, schedule.ErrInstanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule instance: %w", err)
	}

	return &in, nil
}

// GetByIDs implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]schedule.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instanceColumns + `
		FROM schedule_instances
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule instances: %w", err)
	}
	defer rows.Close()

	var instances []schedule.Instance
	for rows.Next() {
		var in schedule.Instance
		if err := scanInstance(rows, &in); err != nil {
			return nil, fmt.Errorf("failed to scan schedule instance: %w", err)
		}
		instances = append(instances, in)
	}

	return instances, nil
}

// ListByContract implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) ListByContract(ctx context.Context, contractID string, from, to time.Time) ([]schedule.Instance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `contract_id = $1 AND status != 'cancelled'`
	args := []interface{}{contractID}
	argIdx := 2

	if !from.IsZero() {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, from)
		argIdx++
	}
	if !to.IsZero() {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, to)
		argIdx++
	}

	query := `
		SELECT ` + instanceColumns + `
		FROM schedule_instances
		WHERE ` + baseWhere + `
		ORDER BY starts_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule instances: %w", err)
	}
	defer rows.Close()

	var instances []schedule.Instance
	for rows.Next() {
		var in schedule.Instance
		if err := scanInstance(rows, &in); err != nil {
			return nil, fmt.Errorf("failed to scan schedule instance: %w", err)
		}
		instances = append(instances, in)
	}

	return instances, nil
}

// Update implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) Update(ctx context.Context, in *schedule.Instance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_instances
		SET date = $1, shift_id = $2, modality_id = $3, starts_at = $4, ends_at = $5,
			break_starts_at = $6, break_ends_at = $7, observation = $8,
			updated_at = NOW()
		WHERE id = $9 AND status = $10
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		in.Date,
		in.ShiftID,
		in.ModalityID,
		in.StartsAt,
		in.EndsAt,
		in.BreakStartsAt,
		in.BreakEndsAt,
		in.Observation,
		in.ID,
		schedule.StatusActive,
	).Scan(&in.UpdatedAt)

	if err == pgx.ErrNoRows {
		return schedule.ErrInstanceNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update schedule instance: %w", err)
	}

	return nil
}

// SoftCancel implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) SoftCancel(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_instances
		SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = $3
	`

	tag, err := q.Exec(ctx, query, schedule.StatusCancelled, ids, schedule.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel schedule instances: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkAbsence implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) MarkAbsence(ctx context.Context, id string, mark schedule.AbsenceMark) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_instances
		SET absence_mark = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, mark, id)
	if err != nil {
		return fmt.Errorf("failed to mark absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrInstanceNotFound
	}

	return nil
}

// ListUnattended implements schedule.InstanceRepository.
func (r *instanceRepositoryImpl) ListUnattended(ctx context.Context, cutoff time.Time) ([]schedule.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instanceColumns + `
		FROM schedule_instances si
		WHERE si.status = $1
		  AND si.absence_mark IS NULL
		  AND si.ends_at < $2
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_sessions s
			WHERE s.schedule_instance_id = si.id
		  )
		ORDER BY si.ends_at ASC
	`

	rows, err := q.Query(ctx, query, schedule.StatusActive, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query unattended instances: %w", err)
	}
	defer rows.Close()

	var instances []schedule.Instance
	for rows.Next() {
		var in schedule.Instance
		if err := scanInstance(rows, &in); err != nil {
			return nil, fmt.Errorf("failed to scan unattended instance: %w", err)
		}
		instances = append(instances, in)
	}

	return instances, nil
}
