package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found for employee/year")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrDateConflict         = errors.New("requested period conflicts with existing records")
	ErrOutsideWorkingHours  = errors.New("requested time window is outside working hours")
	ErrBeforeHireDate       = errors.New("requested period starts before hire date")
)
