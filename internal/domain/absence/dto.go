package absence

import (
	"time"

	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

type OpenNoteRequest struct {
	ScheduleInstanceID string  `json:"schedule_instance_id"`
	Reason             *string `json:"reason,omitempty"`
	ActorID            string  `json:"-"`
}

func (r *OpenNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleInstanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_instance_id",
			Message: "schedule_instance_id is required",
		})
	} else if !validator.IsValidUUID(r.ScheduleInstanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_instance_id",
			Message: "schedule_instance_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveNoteRequest struct {
	Approve *bool   `json:"approve"`
	Reason  *string `json:"reason,omitempty"`
	NoteID  string  `json:"-"`
	ActorID string  `json:"-"`
}

func (r *ResolveNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Approve == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "approve",
			Message: "approve is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoteResponse struct {
	ID                 string     `json:"id"`
	ScheduleInstanceID *string    `json:"schedule_instance_id,omitempty"`
	Reason             string     `json:"reason"`
	Status             string     `json:"status"`
	CreatedBy          string     `json:"created_by"`
	ResolvedBy         *string    `json:"resolved_by,omitempty"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	ResolutionReason   *string    `json:"resolution_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewNoteResponse(n *Note) NoteResponse {
	return NoteResponse{
		ID:                 n.ID,
		ScheduleInstanceID: n.ScheduleInstanceID,
		Reason:             n.Reason,
		Status:             string(n.Status),
		CreatedBy:          n.CreatedBy,
		ResolvedBy:         n.ResolvedBy,
		ResolvedAt:         n.ResolvedAt,
		ResolutionReason:   n.ResolutionReason,
		CreatedAt:          n.CreatedAt,
	}
}
