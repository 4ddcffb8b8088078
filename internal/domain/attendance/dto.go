package attendance

import (
	"time"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

// CoordinatesRequest carries the device position sent with a clock action.
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ClockActionRequest struct {
	Action             string              `json:"action"`
	ScheduleInstanceID *string             `json:"schedule_instance_id,omitempty"`
	Coordinates        *CoordinatesRequest `json:"coordinates,omitempty"`
	EmployeeID         string              `json:"-"`
}

func (r *ClockActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if !validator.IsInSlice(r.Action, ActionValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: iniciar, descanso_obligatorio, descanso_adicional, reanudar, finalizar",
		})
	}

	if r.ScheduleInstanceID != nil && !validator.IsValidUUID(*r.ScheduleInstanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_instance_id",
			Message: "schedule_instance_id must be a valid UUID",
		})
	}

	if r.Coordinates != nil {
		if !validator.IsValidLatitude(r.Coordinates.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Coordinates.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequiresCoordinates reports whether the action cannot be accepted
// without a device position.
func (r *ClockActionRequest) RequiresCoordinates() bool {
	return r.Action == string(ActionStart) || r.Action == string(ActionFinish)
}

type EventResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	At        time.Time `json:"at"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

type SessionResponse struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	ScheduleInstanceID     *string         `json:"schedule_instance_id,omitempty"`
	Date                   string          `json:"date"`
	State                  string          `json:"state"`
	WorkedMinutes          int             `json:"worked_minutes"`
	ObligatoryBreakMinutes int             `json:"obligatory_break_minutes"`
	AdditionalBreakMinutes int             `json:"additional_break_minutes"`
	ClosedAt               *time.Time      `json:"closed_at,omitempty"`
	Events                 []EventResponse `json:"events"`
}

func NewSessionResponse(s *Session) SessionResponse {
	events := make([]EventResponse, 0, len(s.Events))
	for _, ev := range s.Events {
		events = append(events, EventResponse{
			ID:        ev.ID,
			Action:    string(ev.Action),
			At:        ev.At,
			Latitude:  ev.Latitude,
			Longitude: ev.Longitude,
		})
	}
	return SessionResponse{
		ID:                     s.ID,
		EmployeeID:             s.EmployeeID,
		ScheduleInstanceID:     s.ScheduleInstanceID,
		Date:                   s.Date.Format("2006-01-02"),
		State:                  string(s.State),
		WorkedMinutes:          s.WorkedMinutes,
		ObligatoryBreakMinutes: s.ObligatoryBreakMinutes,
		AdditionalBreakMinutes: s.AdditionalBreakMinutes,
		ClosedAt:               s.ClosedAt,
		Events:                 events,
	}
}
