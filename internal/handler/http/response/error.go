package response

import (
	"errors"
	"net/http"

	"github.com/laupm3/workforce-backend-go/internal/domain/absence"
	"github.com/laupm3/workforce-backend-go/internal/domain/attendance"
	"github.com/laupm3/workforce-backend-go/internal/domain/contract"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
	"github.com/laupm3/workforce-backend-go/internal/domain/shift"
	"github.com/laupm3/workforce-backend-go/internal/domain/template"
	"github.com/laupm3/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Invalid clock transitions carry the rejected state and action so
	// clients can recover deterministically.
	var invalidTransition *attendance.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		ConflictWithDetails(w, "Clock action not allowed in the current state", map[string]string{
			"current_state": string(invalidTransition.State),
			"action":        string(invalidTransition.Action),
		})
		return
	}

	switch {
	// Shift catalog errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrModalityNotFound):
		NotFound(w, "Modality not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "A shift with this name already exists in the center")
	case errors.Is(err, shift.ErrInvalidBreakWindow):
		ValidationError(w, map[string]string{
			"break_window": "break window must be both-present or both-absent and lie strictly inside the shift",
		})

	// Template errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Schedule template not found")
	case errors.Is(err, template.ErrTemplateNameExists):
		Conflict(w, "A schedule template with this name already exists")
	case errors.Is(err, template.ErrUnknownReference):
		ValidationError(w, map[string]string{"slots": "referenced shift or modality does not exist"})

	// Schedule instance errors
	case errors.Is(err, schedule.ErrInstanceNotFound):
		NotFound(w, "Schedule instance not found")
	case errors.Is(err, schedule.ErrOverlappingSchedule):
		Conflict(w, "The batch would produce overlapping schedule instances")
	case errors.Is(err, schedule.ErrNothingToGenerate):
		BadRequest(w, "No template slot matches any date in the range", nil)
	case errors.Is(err, schedule.ErrUnknownShiftReference):
		ValidationError(w, map[string]string{"shift_id": "referenced shift does not exist"})

	// Contract errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrOutsideContractValidity):
		Conflict(w, "A date in the batch falls outside the contract validity window")

	// Attendance errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrClockBusy):
		Locked(w, "Another clock action is being processed for this employee")
	case errors.Is(err, attendance.ErrGeolocationRequired):
		ValidationError(w, map[string]string{"coordinates": "coordinates are required for this action"})
	case errors.Is(err, attendance.ErrBreakNotReachedYet):
		Conflict(w, "The obligatory break time has not been reached yet")
	case errors.Is(err, attendance.ErrObligatoryBreakTaken):
		Conflict(w, "The obligatory break was already taken")
	case errors.Is(err, attendance.ErrNoBreakWindow):
		Conflict(w, "The scheduled shift has no obligatory break window")
	case errors.Is(err, attendance.ErrEventOutOfOrder):
		Conflict(w, "Clock event is earlier than the last recorded event")

	// Absence reconciliation errors
	case errors.Is(err, absence.ErrAbsenceNoteNotFound):
		NotFound(w, "Absence note not found")
	case errors.Is(err, absence.ErrAbsenceNoteExists):
		Conflict(w, "An absence note already exists for this schedule instance")
	case errors.Is(err, absence.ErrAlreadyResolved):
		Conflict(w, "The absence note was already resolved")
	case errors.Is(err, absence.ErrAttendanceRecorded):
		Conflict(w, "Attendance was recorded for this schedule instance")
	case errors.Is(err, absence.ErrInstanceNotElapsed):
		Conflict(w, "The schedule instance has not elapsed yet")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
