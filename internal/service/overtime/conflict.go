package overtime

import (
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
)

// ConflictSources are the records already covering dates for the user.
// Overtime has no time-of-day granularity: any record touching the calendar
// date blocks the entry.
type ConflictSources struct {
	Leaves        []leave.LeaveRequest
	SickLeaves    []attendance.SickLeave
	BusinessTrips []attendance.BusinessTrip
	Attendances   []attendance.UnifiedAttendance
}

type ConflictResult struct {
	IsValid   bool     `json:"is_valid"`
	Conflicts []string `json:"conflicts,omitempty"`
}

const dateLayout = "2006-01-02"

// CheckDate reports whether the calendar date is free of absence and
// attendance records.
func CheckDate(date time.Time, src ConflictSources) ConflictResult {
	var conflicts []string

	for _, l := range src.Leaves {
		from, to := l.Range()
		if coversDate(date, from, to) {
			conflicts = append(conflicts, fmt.Sprintf(
				"%s approved from %s to %s",
				l.Type, from.Format(dateLayout), to.Format(dateLayout)))
		}
	}
	for _, s := range src.SickLeaves {
		if coversDate(date, s.DateFrom, s.DateTo) {
			conflicts = append(conflicts, fmt.Sprintf(
				"sick leave from %s to %s",
				s.DateFrom.Format(dateLayout), s.DateTo.Format(dateLayout)))
		}
	}
	for _, t := range src.BusinessTrips {
		if coversDate(date, t.DateFrom, t.DateTo) {
			conflicts = append(conflicts, fmt.Sprintf(
				"business trip from %s to %s",
				t.DateFrom.Format(dateLayout), t.DateTo.Format(dateLayout)))
		}
	}
	for _, a := range src.Attendances {
		if coversDate(date, a.Date, a.Date) {
			conflicts = append(conflicts, fmt.Sprintf(
				"attendance recorded on %s", a.Date.Format(dateLayout)))
		}
	}

	return ConflictResult{
		IsValid:   len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

// CoveredDates returns the dates within [from, to] touched by any record,
// for greying out a date picker.
func CoveredDates(from, to time.Time, src ConflictSources) []time.Time {
	var covered []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if res := CheckDate(d, src); !res.IsValid {
			covered = append(covered, d)
		}
	}
	return covered
}

func coversDate(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}
