package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	BulkUpdate(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Generate implements ScheduleHandler.
func (h *scheduleHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req schedule.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ActorID = actorID

	result, err := h.scheduleService.GenerateFromTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule instances generated successfully", result)
}

// BulkCreate implements ScheduleHandler.
func (h *scheduleHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkCreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ActorID = actorID

	result, err := h.scheduleService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule instances created successfully", result)
}

// BulkUpdate implements ScheduleHandler.
func (h *scheduleHandlerImpl) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkUpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ActorID = actorID

	result, err := h.scheduleService.BulkUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule instances updated successfully", result)
}

// BulkDelete implements ScheduleHandler.
func (h *scheduleHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkDeleteScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ActorID = actorID

	result, err := h.scheduleService.BulkDelete(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule instances deleted successfully", result)
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetInstance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ScheduleHandler.
func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := schedule.InstanceFilter{
		ContractID: r.URL.Query().Get("contract_id"),
		DateFrom:   r.URL.Query().Get("date_from"),
		DateTo:     r.URL.Query().Get("date_to"),
	}

	result, err := h.scheduleService.ListInstances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
