package absence

import "errors"

var (
	ErrAbsenceNoteNotFound = errors.New("absence note not found")
	ErrAbsenceNoteExists   = errors.New("an absence note already exists for this schedule instance")
	ErrAlreadyResolved     = errors.New("the absence note was already resolved")
	ErrAttendanceRecorded  = errors.New("attendance was recorded for this schedule instance")
	ErrInstanceNotElapsed  = errors.New("the schedule instance has not elapsed yet")
)
