package schedule

import (
	"strconv"
	"time"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

type GenerateScheduleRequest struct {
	ContractID string `json:"contract_id"`
	TemplateID string `json:"template_id"`
	DateFrom   string `json:"date_from"` // YYYY-MM-DD
	DateTo     string `json:"date_to"`   // YYYY-MM-DD

	ActorID string `json:"-"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractID) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_id",
			Message: "contract_id is required",
		})
	}
	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.DateFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a valid date in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.DateTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a valid date in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be earlier than date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InstanceItemRequest is one dated assignment; shared by ad-hoc bulk create
// and bulk update so both go through the same validation path.
type InstanceItemRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	ShiftID     string `json:"shift_id"`
	ModalityID  string `json:"modality_id"`
	Observation string `json:"observation,omitempty"`
}

func (r *InstanceItemRequest) validateInto(field string, errs validator.ValidationErrors) validator.ValidationErrors {
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".shift_id",
			Message: "shift_id is required",
		})
	}
	if validator.IsEmpty(r.ModalityID) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".modality_id",
			Message: "modality_id is required",
		})
	}
	return errs
}

type BulkCreateScheduleRequest struct {
	ContractID string                `json:"contract_id"`
	Items      []InstanceItemRequest `json:"items"`

	ActorID string `json:"-"`
}

func (r *BulkCreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractID) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_id",
			Message: "contract_id is required",
		})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "items must contain at least one instance",
		})
	}
	for i := range r.Items {
		errs = r.Items[i].validateInto("items["+strconv.Itoa(i)+"]", errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateInstanceItemRequest struct {
	ID string `json:"id"`
	InstanceItemRequest
}

type BulkUpdateScheduleRequest struct {
	ContractID string                      `json:"contract_id"`
	Items      []UpdateInstanceItemRequest `json:"items"`

	ActorID string `json:"-"`
}

func (r *BulkUpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractID) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_id",
			Message: "contract_id is required",
		})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "items must contain at least one instance",
		})
	}
	for i := range r.Items {
		field := "items[" + strconv.Itoa(i) + "]"
		if validator.IsEmpty(r.Items[i].ID) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".id",
				Message: "id is required",
			})
		}
		errs = r.Items[i].validateInto(field, errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkDeleteScheduleRequest struct {
	IDs []string `json:"ids"`

	ActorID string `json:"-"`
}

func (r *BulkDeleteScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must contain at least one instance id",
		})
	}
	for i, id := range r.IDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "ids[" + strconv.Itoa(i) + "]",
				Message: "id must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InstanceResponse struct {
	ID            string  `json:"id"`
	ContractID    string  `json:"contract_id"`
	Date          string  `json:"date"`
	ShiftID       string  `json:"shift_id"`
	ModalityID    string  `json:"modality_id"`
	StartsAt      string  `json:"starts_at"`
	EndsAt        string  `json:"ends_at"`
	BreakStartsAt *string `json:"break_starts_at,omitempty"`
	BreakEndsAt   *string `json:"break_ends_at,omitempty"`
	Observation   string  `json:"observation,omitempty"`
	Status        string  `json:"status"`
	Absence       *string `json:"absence,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// BatchResponse is the committed batch plus non-fatal integrity warnings
// (e.g. sessions or notes left orphaned by a bulk delete).
type BatchResponse struct {
	Instances []InstanceResponse `json:"instances"`
	Warnings  []string           `json:"warnings,omitempty"`
}

type InstanceFilter struct {
	ContractID string
	DateFrom   string
	DateTo     string
}

func (f *InstanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.ContractID) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_id",
			Message: "contract_id is required",
		})
	}
	if f.DateFrom != "" {
		if _, ok := validator.IsValidDate(f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.DateTo != "" {
		if _, ok := validator.IsValidDate(f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func NewInstanceResponse(in *Instance) InstanceResponse {
	resp := InstanceResponse{
		ID:          in.ID,
		ContractID:  in.ContractID,
		Date:        in.Date.Format("2006-01-02"),
		ShiftID:     in.ShiftID,
		ModalityID:  in.ModalityID,
		StartsAt:    in.StartsAt.Format(time.RFC3339),
		EndsAt:      in.EndsAt.Format(time.RFC3339),
		Observation: in.Observation,
		Status:      string(in.Status),
		CreatedAt:   in.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   in.UpdatedAt.Format(time.RFC3339),
	}
	if in.BreakStartsAt != nil {
		bs := in.BreakStartsAt.Format(time.RFC3339)
		resp.BreakStartsAt = &bs
	}
	if in.BreakEndsAt != nil {
		be := in.BreakEndsAt.Format(time.RFC3339)
		resp.BreakEndsAt = &be
	}
	if in.Absence != nil {
		mark := string(*in.Absence)
		resp.Absence = &mark
	}
	return resp
}

func NewBatchResponse(instances []Instance, warnings []string) BatchResponse {
	responses := make([]InstanceResponse, 0, len(instances))
	for i := range instances {
		responses = append(responses, NewInstanceResponse(&instances[i]))
	}
	return BatchResponse{Instances: responses, Warnings: warnings}
}
