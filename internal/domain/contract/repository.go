package contract

import (
	"context"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id string) (*Contract, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Contract, error)
}
