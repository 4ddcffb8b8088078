package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string, centerID string) (ShiftResponse, error)
	ListShifts(ctx context.Context, centerID string, filter ShiftFilter) (ListShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	ListModalities(ctx context.Context) ([]ModalityResponse, error)
}
