package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type modalityRepositoryImpl struct {
	db *database.DB
}

func NewModalityRepository(db *database.DB) shift.ModalityRepository {
	return &modalityRepositoryImpl{db: db}
}

// GetByID implements shift.ModalityRepository.
func (r *modalityRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.Modality, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name
		FROM modalities
		WHERE id = $1
	`

	var m shift.Modality
	err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name)

	if err == pgx.ErrNoRows {
		return nil, shift.ErrModalityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get modality: %w", err)
	}

	return &m, nil
}

// List implements shift.ModalityRepository.
func (r *modalityRepositoryImpl) List(ctx context.Context) ([]shift.Modality, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name
		FROM modalities
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query modalities: %w", err)
	}
	defer rows.Close()

	var modalities []shift.Modality
	for rows.Next() {
		var m shift.Modality
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan modality: %w", err)
		}
		modalities = append(modalities, m)
	}

	return modalities, nil
}
