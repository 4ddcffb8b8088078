package schedule

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
)

func TestMapInstanceWriteError(t *testing.T) {
	// The exclusion constraint catches overlapping writes that race past
	// the in-memory check; every bulk write path must surface it as the
	// domain conflict.
	err := mapInstanceWriteError(&pgconn.PgError{Code: "23P01"})
	assert.ErrorIs(t, err, schedule.ErrOverlappingSchedule)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapInstanceWriteError(plain))

	unique := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, error(unique), mapInstanceWriteError(unique))
}
