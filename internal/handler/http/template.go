package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/template"
	"github.com/laupm3/workforce-backend-go/internal/handler/http/response"
)

type TemplateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &templateHandlerImpl{
		templateService: templateService,
	}
}

// Create implements TemplateHandler.
func (h *templateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req template.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, centerID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.templateService.CreateTemplate(r.Context(), actorID, centerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule template created successfully", result)
}

// Get implements TemplateHandler.
func (h *templateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TemplateHandler.
func (h *templateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := template.TemplateFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	result, err := h.templateService.ListTemplates(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Templates, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements TemplateHandler.
func (h *templateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req template.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, centerID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.templateService.UpdateTemplate(r.Context(), actorID, centerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule template updated successfully", result)
}

// Delete implements TemplateHandler.
func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	if err := h.templateService.DeleteTemplate(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule template deleted successfully", nil)
}
