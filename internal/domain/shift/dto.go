package shift

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name           string  `json:"name"`
	StartTime      string  `json:"start_time"`                 // HH:MM format
	EndTime        string  `json:"end_time"`                   // HH:MM format
	BreakStartTime *string `json:"break_start_time,omitempty"` // HH:MM format, optional
	BreakEndTime   *string `json:"break_end_time,omitempty"`   // HH:MM format, optional
	Color          string  `json:"color"`

	// Filled by the handler from the actor's claims, never from the body.
	CenterID string `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, end, errs := validateShiftTimes(r.StartTime, r.EndTime, errs)

	if validator.IsEmpty(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color is required",
		})
	} else if !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a 6-hex-digit value",
		})
	}

	errs = validateBreakPair(start, end, r.BreakStartTime, r.BreakEndTime, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID             string  `json:"-"`
	Name           string  `json:"name"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
	Color          string  `json:"color"`

	CenterID string `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	create := CreateShiftRequest{
		Name:           r.Name,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		BreakStartTime: r.BreakStartTime,
		BreakEndTime:   r.BreakEndTime,
		Color:          r.Color,
	}
	return create.Validate()
}

func validateShiftTimes(startStr, endStr string, errs validator.ValidationErrors) (time.Time, time.Time, validator.ValidationErrors) {
	var start, end time.Time
	var ok bool

	if validator.IsEmpty(startStr) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if start, ok = validator.IsValidTime(startStr); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:MM format",
		})
	}

	if validator.IsEmpty(endStr) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if end, ok = validator.IsValidTime(endStr); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:MM format",
		})
	}

	return start, end, errs
}

func validateBreakPair(start, end time.Time, breakStartStr, breakEndStr *string, errs validator.ValidationErrors) validator.ValidationErrors {
	var breakStart, breakEnd *time.Time

	if breakStartStr != nil {
		t, ok := validator.IsValidTime(*breakStartStr)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start_time",
				Message: "break_start_time must be a valid time in HH:MM format",
			})
			return errs
		}
		breakStart = &t
	}
	if breakEndStr != nil {
		t, ok := validator.IsValidTime(*breakEndStr)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end_time",
				Message: "break_end_time must be a valid time in HH:MM format",
			})
			return errs
		}
		breakEnd = &t
	}

	if breakStart == nil && breakEnd == nil {
		return errs
	}
	if start.IsZero() || end.IsZero() {
		return errs
	}
	if err := ValidateBreakWindow(start, end, breakStart, breakEnd); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "break_window",
			Message: "break window must be both-present or both-absent and lie strictly inside the shift",
		})
	}
	return errs
}

// ToEntity converts a validated request into a Shift. Validate must
// have been called first.
func (r *CreateShiftRequest) ToEntity() (*Shift, error) {
	start, _ := validator.IsValidTime(r.StartTime)
	end, _ := validator.IsValidTime(r.EndTime)

	s := &Shift{
		CenterID:  r.CenterID,
		Name:      r.Name,
		StartTime: start,
		EndTime:   end,
		Color:     strings.ToLower(r.Color),
	}
	if r.BreakStartTime != nil && r.BreakEndTime != nil {
		bs, _ := validator.IsValidTime(*r.BreakStartTime)
		be, _ := validator.IsValidTime(*r.BreakEndTime)
		s.BreakStartTime = &bs
		s.BreakEndTime = &be
	}

	if err := ValidateBreakWindow(s.StartTime, s.EndTime, s.BreakStartTime, s.BreakEndTime); err != nil {
		return nil, err
	}

	return s, nil
}

// ApplyTo overwrites the mutable fields of an existing shift with the
// validated request values.
func (r *UpdateShiftRequest) ApplyTo(s *Shift) error {
	create := CreateShiftRequest{
		Name:           r.Name,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		BreakStartTime: r.BreakStartTime,
		BreakEndTime:   r.BreakEndTime,
		Color:          r.Color,
		CenterID:       r.CenterID,
	}
	updated, err := create.ToEntity()
	if err != nil {
		return err
	}

	s.Name = updated.Name
	s.StartTime = updated.StartTime
	s.EndTime = updated.EndTime
	s.BreakStartTime = updated.BreakStartTime
	s.BreakEndTime = updated.BreakEndTime
	s.Color = updated.Color
	return nil
}

type ShiftResponse struct {
	ID             string  `json:"id"`
	CenterID       string  `json:"center_id"`
	Name           string  `json:"name"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	BreakStartTime *string `json:"break_start_time,omitempty"`
	BreakEndTime   *string `json:"break_end_time,omitempty"`
	Color          string  `json:"color"`
	Overnight      bool    `json:"overnight"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewShiftResponse(s *Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:        s.ID,
		CenterID:  s.CenterID,
		Name:      s.Name,
		StartTime: s.StartTime.Format("15:04"),
		EndTime:   s.EndTime.Format("15:04"),
		Color:     s.Color,
		Overnight: s.IsOvernight(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
	if s.BreakStartTime != nil {
		bs := s.BreakStartTime.Format("15:04")
		resp.BreakStartTime = &bs
	}
	if s.BreakEndTime != nil {
		be := s.BreakEndTime.Format("15:04")
		resp.BreakEndTime = &be
	}
	return resp
}

type ListShiftResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Showing    string          `json:"showing"`
	Shifts     []ShiftResponse `json:"shifts"`
}

func NewListShiftResponse(shifts []Shift, total int64, page, limit int) ListShiftResponse {
	responses := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, NewShiftResponse(&shifts[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	from := (page-1)*limit + 1
	to := from + len(responses) - 1
	if len(responses) == 0 {
		from = 0
		to = 0
	}

	return ListShiftResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    fmt.Sprintf("%d-%d of %d", from, to, total),
		Shifts:     responses,
	}
}

type ShiftFilter struct {
	Name *string `json:"name,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // name, start_time, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.SortBy != "" {
		validSortFields := []string{"name", "start_time", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: name, start_time, created_at",
			})
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ModalityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
