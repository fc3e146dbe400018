package overtime

import (
	"testing"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func TestCheckDate_FreeDateIsValid(t *testing.T) {
	res := CheckDate(day("2026-07-01"), ConflictSources{})

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Conflicts)
}

func TestCheckDate_LeaveBlocksWholeDay(t *testing.T) {
	timeFrom, timeTo := "09:00", "10:00"
	src := ConflictSources{
		Leaves: []leave.LeaveRequest{{
			Type:     leave.TypePermesso,
			Day:      dayPtr("2026-07-01"),
			TimeFrom: &timeFrom,
			TimeTo:   &timeTo,
			Status:   leave.StatusApproved,
		}},
	}

	// Overtime has no time granularity: even a one-hour permesso blocks it.
	res := CheckDate(day("2026-07-01"), src)

	assert.False(t, res.IsValid)
	assert.Len(t, res.Conflicts, 1)
}

func TestCheckDate_SickLeaveRange(t *testing.T) {
	src := ConflictSources{
		SickLeaves: []attendance.SickLeave{
			{DateFrom: day("2026-07-01"), DateTo: day("2026-07-03")},
		},
	}

	assert.False(t, CheckDate(day("2026-07-02"), src).IsValid)
	assert.True(t, CheckDate(day("2026-07-04"), src).IsValid)
}

func TestCoveredDates(t *testing.T) {
	src := ConflictSources{
		BusinessTrips: []attendance.BusinessTrip{
			{DateFrom: day("2026-07-02"), DateTo: day("2026-07-03")},
		},
		Attendances: []attendance.UnifiedAttendance{
			{Date: day("2026-07-05")},
		},
	}

	covered := CoveredDates(day("2026-07-01"), day("2026-07-05"), src)

	assert.Equal(t, []time.Time{day("2026-07-02"), day("2026-07-03"), day("2026-07-05")}, covered)
}
