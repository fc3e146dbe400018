package leave

import (
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

// ConflictSources are the already-loaded records a candidate request is
// checked against. Loading is the repository's job; the check itself is pure.
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

// CheckConflicts reports every overlap between the candidate request and the
// existing records, in human-readable form. Two date ranges [a,b] and [c,d]
// conflict iff a <= d && c <= b (inclusive on both ends). A permesso only
// conflicts with another permesso on the same day when the time windows
// themselves overlap; against every other record type the whole day counts.
func CheckConflicts(req leave.LeaveRequest, src ConflictSources) ConflictResult {
	from, to := req.Range()
	var conflicts []string

	for _, existing := range src.Leaves {
		if existing.ID == req.ID {
			continue
		}
		exFrom, exTo := existing.Range()
		if !rangesOverlap(from, to, exFrom, exTo) {
			continue
		}

		if req.Type == leave.TypePermesso && existing.Type == leave.TypePermesso {
			if !timeWindowsOverlap(req, existing) {
				continue
			}
			conflicts = append(conflicts, fmt.Sprintf(
				"permesso already approved on %s from %s to %s",
				exFrom.Format(dateLayout), *existing.TimeFrom, *existing.TimeTo))
			continue
		}

		conflicts = append(conflicts, fmt.Sprintf(
			"%s already approved from %s to %s",
			existing.Type, exFrom.Format(dateLayout), exTo.Format(dateLayout)))
	}

	for _, s := range src.SickLeaves {
		if rangesOverlap(from, to, s.DateFrom, s.DateTo) {
			conflicts = append(conflicts, fmt.Sprintf(
				"sick leave from %s to %s",
				s.DateFrom.Format(dateLayout), s.DateTo.Format(dateLayout)))
		}
	}

	for _, t := range src.BusinessTrips {
		if rangesOverlap(from, to, t.DateFrom, t.DateTo) {
			conflicts = append(conflicts, fmt.Sprintf(
				"business trip from %s to %s",
				t.DateFrom.Format(dateLayout), t.DateTo.Format(dateLayout)))
		}
	}

	for _, a := range src.Attendances {
		// Rows materialized by a leave approval are already reported
		// through the originating request.
		if a.LeaveRequestID != nil {
			continue
		}
		if rangesOverlap(from, to, a.Date, a.Date) {
			conflicts = append(conflicts, fmt.Sprintf(
				"attendance recorded on %s", a.Date.Format(dateLayout)))
		}
	}

	return ConflictResult{
		IsValid:   len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

// rangesOverlap implements the inclusive-inclusive overlap rule.
func rangesOverlap(a, b, c, d time.Time) bool {
	return !a.After(d) && !c.After(b)
}

// timeWindowsOverlap compares two permesso windows on the same day.
// Windows that merely touch (10:00-11:00 after 09:00-10:00) do not overlap.
func timeWindowsOverlap(a, b leave.LeaveRequest) bool {
	if a.TimeFrom == nil || a.TimeTo == nil || b.TimeFrom == nil || b.TimeTo == nil {
		return false
	}
	aFrom := validator.ClockMinutes(*a.TimeFrom)
	aTo := validator.ClockMinutes(*a.TimeTo)
	bFrom := validator.ClockMinutes(*b.TimeFrom)
	bTo := validator.ClockMinutes(*b.TimeTo)
	return aFrom < bTo && bFrom < aTo
}
