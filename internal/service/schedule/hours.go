package schedule

import (
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

// CheckWorkingHours validates a permesso time window against the configured
// company schedule. Returns human-readable errors; empty slice means valid.
// Tolerance widens the window symmetrically: the request must sit inside
// [start-tolerance, end+tolerance].
func CheckWorkingHours(day time.Time, timeFrom, timeTo string, ws schedule.WorkSchedule) []string {
	var errs []string

	if !ws.AllowsWeekday(day.Weekday()) {
		errs = append(errs, fmt.Sprintf(
			"%s is not a working day", day.Weekday()))
		return errs
	}

	reqFrom, okFrom := validator.IsValidClock(timeFrom)
	reqTo, okTo := validator.IsValidClock(timeTo)
	if !okFrom || !okTo {
		errs = append(errs, "time window must be HH:MM")
		return errs
	}

	earliest := validator.ClockMinutes(ws.StartTime) - ws.ToleranceMinutes
	latest := validator.ClockMinutes(ws.EndTime) + ws.ToleranceMinutes

	if reqFrom < earliest {
		errs = append(errs, fmt.Sprintf(
			"time window starts before working hours (%s, tolerance %d min)",
			ws.StartTime, ws.ToleranceMinutes))
	}
	if reqTo > latest {
		errs = append(errs, fmt.Sprintf(
			"time window ends after working hours (%s, tolerance %d min)",
			ws.EndTime, ws.ToleranceMinutes))
	}

	return errs
}
