package schedule

import "errors"

var (
	ErrInstanceNotFound      = errors.New("schedule instance not found")
	ErrOverlappingSchedule   = errors.New("overlapping schedule instance detected for this contract")
	ErrNothingToGenerate     = errors.New("no template slot matches any date in the range")
	ErrUnknownShiftReference = errors.New("instance references an unknown shift or modality")
)
