package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime record not found")
	ErrDateConflict     = errors.New("overtime date conflicts with an absence or attendance record")
)
