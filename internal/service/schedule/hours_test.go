package schedule

import (
	"testing"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func weekdaySchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		StartTime:        "09:00",
		EndTime:          "18:00",
		Monday:           true,
		Tuesday:          true,
		Wednesday:        true,
		Thursday:         true,
		Friday:           true,
		ToleranceMinutes: 0,
	}
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestCheckWorkingHours_InsideWindow(t *testing.T) {
	// 2026-07-01 is a Wednesday.
	errs := CheckWorkingHours(day("2026-07-01"), "10:00", "12:00", weekdaySchedule())

	assert.Empty(t, errs)
}

func TestCheckWorkingHours_NonWorkingDayRejected(t *testing.T) {
	ws := weekdaySchedule()
	ws.Monday = false

	// 2026-07-06 is a Monday.
	errs := CheckWorkingHours(day("2026-07-06"), "10:00", "11:00", ws)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "not a working day")
}

func TestCheckWorkingHours_WeekendRejected(t *testing.T) {
	// 2026-07-04 is a Saturday.
	errs := CheckWorkingHours(day("2026-07-04"), "10:00", "11:00", weekdaySchedule())

	assert.Len(t, errs, 1)
}

func TestCheckWorkingHours_OutsideWindow(t *testing.T) {
	errs := CheckWorkingHours(day("2026-07-01"), "08:00", "19:00", weekdaySchedule())

	assert.Len(t, errs, 2)
}

func TestCheckWorkingHours_ToleranceWidensWindow(t *testing.T) {
	ws := weekdaySchedule()
	ws.ToleranceMinutes = 30

	// 08:30 and 18:30 sit exactly on the widened boundaries.
	errs := CheckWorkingHours(day("2026-07-01"), "08:30", "18:30", ws)
	assert.Empty(t, errs)

	errs = CheckWorkingHours(day("2026-07-01"), "08:29", "18:31", ws)
	assert.Len(t, errs, 2)
}

func TestCheckWorkingHours_BoundaryTimesAccepted(t *testing.T) {
	errs := CheckWorkingHours(day("2026-07-01"), "09:00", "18:00", weekdaySchedule())

	assert.Empty(t, errs)
}

func TestCheckWorkingHours_MalformedClockRejected(t *testing.T) {
	errs := CheckWorkingHours(day("2026-07-01"), "9am", "10:00", weekdaySchedule())

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "HH:MM")
}
