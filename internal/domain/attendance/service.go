package attendance

import (
	"context"
)

type AttendanceService interface {
	// Clock applies a clock action to the employee's session for today,
	// creating the session on iniciar. Concurrent calls for the same
	// employee and day are serialized.
	Clock(ctx context.Context, req ClockActionRequest) (SessionResponse, error)
	// Today returns the employee's session for the current day.
	Today(ctx context.Context, employeeID string) (SessionResponse, error)
	// Sessions lists the employee's sessions over a date range.
	Sessions(ctx context.Context, employeeID string, dateFrom, dateTo string) ([]SessionResponse, error)
}
