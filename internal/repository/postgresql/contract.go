package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/contract"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// GetByID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (*contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, center_id, valid_from, valid_to
		FROM contracts
		WHERE id = $1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.EmployeeID, &c.CenterID, &c.ValidFrom, &c.ValidTo)

	if err == pgx.ErrNoRows {
		return nil, contract.ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return &c, nil
}

// GetByEmployeeID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, center_id, valid_from, valid_to
		FROM contracts
		WHERE employee_id = $1
		  AND valid_from <= NOW()
		  AND (valid_to IS NULL OR valid_to >= NOW())
		ORDER BY valid_from DESC
		LIMIT 1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, employeeID).Scan(&c.ID, &c.EmployeeID, &c.CenterID, &c.ValidFrom, &c.ValidTo)

	if err == pgx.ErrNoRows {
		return nil, contract.ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return &c, nil
}
