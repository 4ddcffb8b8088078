package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s *Shift) error
	GetByID(ctx context.Context, id string, centerID string) (*Shift, error)
	GetByCenterID(ctx context.Context, centerID string, filter ShiftFilter) ([]Shift, int64, error)
	Update(ctx context.Context, s *Shift) error
}

type ModalityRepository interface {
	GetByID(ctx context.Context, id string) (*Modality, error)
	List(ctx context.Context) ([]Modality, error)
}
