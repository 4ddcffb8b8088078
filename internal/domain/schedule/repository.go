package schedule

import (
	"context"
	"time"
)

type InstanceRepository interface {
	BulkInsert(ctx context.Context, instances []Instance) error
	GetByID(ctx context.Context, id string) (*Instance, error)
	GetByIDs(ctx context.Context, ids []string) ([]Instance, error)
	// ListByContract returns the non-cancelled instances whose working day
	// falls inside [from, to]. Zero bounds mean unbounded.
	ListByContract(ctx context.Context, contractID string, from, to time.Time) ([]Instance, error)
	Update(ctx context.Context, in *Instance) error
	// SoftCancel cancels the given instances, returning how many rows
	// changed.
	SoftCancel(ctx context.Context, ids []string) (int64, error)
	MarkAbsence(ctx context.Context, id string, mark AbsenceMark) error
	// ListUnattended returns active instances that ended before the cutoff
	// and have neither an attendance session nor an absence mark.
	ListUnattended(ctx context.Context, cutoff time.Time) ([]Instance, error)
}
