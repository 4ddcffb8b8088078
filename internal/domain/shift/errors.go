package shift

import "errors"

var (
	// Shift errors
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNameExists    = errors.New("shift with this name already exists in the center")
	ErrInvalidBreakWindow = errors.New("break window must be both-present or both-absent and lie strictly inside the shift")

	// Modality errors
	ErrModalityNotFound = errors.New("modality not found")
)
