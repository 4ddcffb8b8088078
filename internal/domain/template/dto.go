package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

type SlotRequest struct {
	Weekday    *int    `json:"weekday"`
	ShiftID    *string `json:"shift_id,omitempty"`
	ModalityID *string `json:"modality_id,omitempty"`
}

type CreateTemplateRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Slots       []SlotRequest `json:"slots"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	errs = append(errs, validateSlots(r.Slots)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTemplateRequest struct {
	ID          string        `json:"-"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Slots       []SlotRequest `json:"slots"`
}

func (r *UpdateTemplateRequest) Validate() error {
	create := CreateTemplateRequest{
		Name:        r.Name,
		Description: r.Description,
		Slots:       r.Slots,
	}
	return create.Validate()
}

// validateSlots enforces the weekday range and uniqueness and the
// both-or-neither pairing before any reference lookup happens.
func validateSlots(slots []SlotRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors
	seen := make(map[int]bool)

	for i, slot := range slots {
		field := "slots[" + strconv.Itoa(i) + "]"

		if slot.Weekday == nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "weekday is required",
			})
			continue
		}
		if *slot.Weekday < 0 || *slot.Weekday > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
			continue
		}
		if seen[*slot.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "duplicate weekday in slots",
			})
		}
		seen[*slot.Weekday] = true

		if (slot.ShiftID == nil) != (slot.ModalityID == nil) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "shift_id and modality_id must be both present or both absent",
			})
		}
	}

	return errs
}

type SlotResponse struct {
	Weekday     int     `json:"weekday"`
	WeekdayName string  `json:"weekday_name"`
	ShiftID     *string `json:"shift_id,omitempty"`
	ModalityID  *string `json:"modality_id,omitempty"`
}

type TemplateResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Slots       []SlotResponse `json:"slots"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type ListTemplateResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Templates  []TemplateResponse `json:"templates"`
}

type TemplateFilter struct {
	Name *string `json:"name,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *TemplateFilter) Validate() error {
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
		validSortFields := []string{"name", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: name, created_at",
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

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func NewTemplateResponse(t *Template) TemplateResponse {
	slots := make([]SlotResponse, 0, len(t.Slots))
	for _, slot := range t.Slots {
		slots = append(slots, SlotResponse{
			Weekday:     slot.Weekday,
			WeekdayName: weekdayNames[slot.Weekday],
			ShiftID:     slot.ShiftID,
			ModalityID:  slot.ModalityID,
		})
	}
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Slots:       slots,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func NewListTemplateResponse(templates []Template, total int64, page, limit int) ListTemplateResponse {
	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, NewTemplateResponse(&templates[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	from := (page-1)*limit + 1
	to := from + len(responses) - 1
	if len(responses) == 0 {
		from = 0
		to = 0
	}

	return ListTemplateResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    fmt.Sprintf("%d-%d of %d", from, to, total),
		Templates:  responses,
	}
}

// ToEntity converts a validated request into a Template with its slots.
func (r *CreateTemplateRequest) ToEntity() *Template {
	t := &Template{
		Name:        r.Name,
		Description: r.Description,
	}
	for _, slot := range r.Slots {
		t.Slots = append(t.Slots, Slot{
			Weekday:    *slot.Weekday,
			ShiftID:    slot.ShiftID,
			ModalityID: slot.ModalityID,
		})
	}
	return t
}
