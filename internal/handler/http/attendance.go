package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Sessions(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// targetEmployee resolves the addressed employee. Employees act on their
// own records; administrators may act on anyone's.
func targetEmployee(r *http.Request) (string, bool) {
	actorID, _, err := actorFromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID != actorID && !isAdmin(r.Context()) {
		return "", false
	}
	return employeeID, true
}

// Clock implements AttendanceHandler.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, ok := targetEmployee(r)
	if !ok {
		response.Forbidden(w, "Cannot clock for another employee")
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(r)
	if !ok {
		response.Forbidden(w, "Cannot view another employee's attendance")
		return
	}

	result, err := h.attendanceService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Sessions implements AttendanceHandler.
func (h *attendanceHandlerImpl) Sessions(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(r)
	if !ok {
		response.Forbidden(w, "Cannot view another employee's attendance")
		return
	}

	result, err := h.attendanceService.Sessions(r.Context(), employeeID,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
