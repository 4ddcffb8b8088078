package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: absenceService,
	}
}

// Create implements AbsenceHandler.
func (h *absenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.OpenNoteRequest
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

	result, err := h.absenceService.OpenNote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence note opened successfully", result)
}

// Resolve implements AbsenceHandler.
func (h *absenceHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req absence.ResolveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.NoteID = chi.URLParam(r, "id")
	req.ActorID = actorID

	result, err := h.absenceService.ResolveNote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence note resolved successfully", result)
}

// Get implements AbsenceHandler.
func (h *absenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.absenceService.GetNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
