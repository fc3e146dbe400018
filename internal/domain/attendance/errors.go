package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrSickLeaveNotFound  = errors.New("sick leave record not found")
	ErrTripNotFound       = errors.New("business trip record not found")
)
