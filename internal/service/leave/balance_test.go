package leave

import (
	"testing"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func datePtr(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func ferieRequest(from, to string) leave.LeaveRequest {
	return leave.LeaveRequest{
		Type:     leave.TypeFerie,
		DateFrom: datePtr(from),
		DateTo:   datePtr(to),
	}
}

func permessoRequest(day, timeFrom, timeTo string) leave.LeaveRequest {
	return leave.LeaveRequest{
		Type:     leave.TypePermesso,
		Day:      datePtr(day),
		TimeFrom: strPtr(timeFrom),
		TimeTo:   strPtr(timeTo),
	}
}

func TestCheckBalance_NilBalanceBlocks(t *testing.T) {
	check := CheckBalance(ferieRequest("2026-07-01", "2026-07-03"), nil)

	assert.False(t, check.HasBalance)
	assert.False(t, check.OK())
	assert.NotEmpty(t, check.ErrorMessage)
}

func TestCheckBalance_FerieWithinRemaining(t *testing.T) {
	balance := leave.LeaveBalance{
		VacationDaysTotal: 22,
		VacationDaysUsed:  10,
	}

	check := CheckBalance(ferieRequest("2026-07-01", "2026-07-05"), &balance)

	assert.True(t, check.OK())
	assert.Equal(t, 5.0, check.VacationDaysRequested)
}

func TestCheckBalance_FerieExceedsRemaining(t *testing.T) {
	// 22 total, 20 used: two days remain, a three-day request must fail.
	balance := leave.LeaveBalance{
		VacationDaysTotal: 22,
		VacationDaysUsed:  20,
	}

	check := CheckBalance(ferieRequest("2026-07-01", "2026-07-03"), &balance)

	assert.True(t, check.HasBalance)
	assert.True(t, check.ExceedsVacationLimit)
	assert.False(t, check.OK())
	assert.Equal(t, 3.0, check.VacationDaysRequested)
	assert.Contains(t, check.ErrorMessage, "vacation days")
}

func TestCheckBalance_FerieExactlyRemaining(t *testing.T) {
	balance := leave.LeaveBalance{
		VacationDaysTotal: 22,
		VacationDaysUsed:  20,
	}

	check := CheckBalance(ferieRequest("2026-07-01", "2026-07-02"), &balance)

	assert.True(t, check.OK())
}

func TestCheckBalance_PermessoFractionalHours(t *testing.T) {
	balance := leave.LeaveBalance{
		PermissionHoursTotal: 40,
		PermissionHoursUsed:  38,
	}

	check := CheckBalance(permessoRequest("2026-07-01", "09:00", "10:30"), &balance)

	assert.True(t, check.OK())
	assert.Equal(t, 1.5, check.PermissionHoursRequested)
}

func TestCheckBalance_PermessoExceedsRemaining(t *testing.T) {
	balance := leave.LeaveBalance{
		PermissionHoursTotal: 40,
		PermissionHoursUsed:  39,
	}

	check := CheckBalance(permessoRequest("2026-07-01", "09:00", "11:00"), &balance)

	assert.True(t, check.ExceedsPermissionLimit)
	assert.False(t, check.OK())
}

func TestPermissionHours(t *testing.T) {
	assert.Equal(t, 2.0, PermissionHours(permessoRequest("2026-07-01", "14:00", "16:00")))
	assert.Equal(t, 0.25, PermissionHours(permessoRequest("2026-07-01", "09:00", "09:15")))
	assert.Equal(t, 0.0, PermissionHours(leave.LeaveRequest{Type: leave.TypePermesso}))
}
