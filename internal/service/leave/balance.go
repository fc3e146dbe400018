package leave

import (
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

// BalanceCheck is the structured outcome of checking a candidate request
// against the employee's yearly allotment. Pure check: nothing is decremented
// here, usage moves only inside the approval transaction.
type BalanceCheck struct {
	HasBalance               bool    `json:"has_balance"`
	ExceedsVacationLimit     bool    `json:"exceeds_vacation_limit"`
	ExceedsPermissionLimit   bool    `json:"exceeds_permission_limit"`
	ErrorMessage             string  `json:"error_message,omitempty"`
	VacationDaysRequested    float64 `json:"vacation_days_requested,omitempty"`
	PermissionHoursRequested float64 `json:"permission_hours_requested,omitempty"`
}

func (c BalanceCheck) OK() bool {
	return c.HasBalance && !c.ExceedsVacationLimit && !c.ExceedsPermissionLimit
}

// CheckBalance validates a request against the loaded balance. A nil balance
// means no allotment exists for the employee/year and blocks submission.
func CheckBalance(req leave.LeaveRequest, balance *leave.LeaveBalance) BalanceCheck {
	if balance == nil {
		return BalanceCheck{
			HasBalance:   false,
			ErrorMessage: "no leave balance configured for this year",
		}
	}

	check := BalanceCheck{HasBalance: true}

	switch req.Type {
	case leave.TypeFerie:
		days := float64(req.DayCount())
		check.VacationDaysRequested = days
		remaining := balance.RemainingVacationDays()
		if days > remaining {
			check.ExceedsVacationLimit = true
			check.ErrorMessage = fmt.Sprintf(
				"request spans %.0f vacation days but only %.1f remain", days, remaining)
		}

	case leave.TypePermesso:
		hours := PermissionHours(req)
		check.PermissionHoursRequested = hours
		remaining := balance.RemainingPermissionHours()
		if hours > remaining {
			check.ExceedsPermissionLimit = true
			check.ErrorMessage = fmt.Sprintf(
				"request uses %.2f permission hours but only %.2f remain", hours, remaining)
		}
	}

	return check
}

// PermissionHours returns the fractional hour cost of a permesso window.
func PermissionHours(req leave.LeaveRequest) float64 {
	if req.TimeFrom == nil || req.TimeTo == nil {
		return 0
	}
	from := validator.ClockMinutes(*req.TimeFrom)
	to := validator.ClockMinutes(*req.TimeTo)
	if to <= from {
		return 0
	}
	return float64(to-from) / 60.0
}
