package leave

import (
	"testing"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func approvedPermesso(id, day, timeFrom, timeTo string) leave.LeaveRequest {
	req := permessoRequest(day, timeFrom, timeTo)
	req.ID = id
	req.Status = leave.StatusApproved
	return req
}

func TestCheckConflicts_NoRecordsIsValid(t *testing.T) {
	res := CheckConflicts(ferieRequest("2026-07-01", "2026-07-05"), ConflictSources{})

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Conflicts)
}

func TestCheckConflicts_FerieOverlapsApprovedFerie(t *testing.T) {
	existing := ferieRequest("2026-07-03", "2026-07-10")
	existing.ID = "existing"

	res := CheckConflicts(ferieRequest("2026-07-01", "2026-07-05"), ConflictSources{
		Leaves: []leave.LeaveRequest{existing},
	})

	assert.False(t, res.IsValid)
	assert.Len(t, res.Conflicts, 1)
}

func TestCheckConflicts_InclusiveBoundaryConflicts(t *testing.T) {
	// Ranges that merely touch on the boundary day still conflict.
	existing := ferieRequest("2026-07-05", "2026-07-08")
	existing.ID = "existing"

	res := CheckConflicts(ferieRequest("2026-07-01", "2026-07-05"), ConflictSources{
		Leaves: []leave.LeaveRequest{existing},
	})

	assert.False(t, res.IsValid)
}

func TestCheckConflicts_PermessoWindowsOnSameDay(t *testing.T) {
	src := ConflictSources{
		Leaves: []leave.LeaveRequest{
			approvedPermesso("a", "2026-07-01", "09:00", "10:00"),
			approvedPermesso("b", "2026-07-01", "14:00", "16:00"),
		},
	}

	overlapping := CheckConflicts(permessoRequest("2026-07-01", "09:30", "09:45"), src)
	assert.False(t, overlapping.IsValid)
	assert.Len(t, overlapping.Conflicts, 1)

	clean := CheckConflicts(permessoRequest("2026-07-01", "11:00", "12:00"), src)
	assert.True(t, clean.IsValid)
}

func TestCheckConflicts_PermessoWindowsTouchingDoNotConflict(t *testing.T) {
	src := ConflictSources{
		Leaves: []leave.LeaveRequest{
			approvedPermesso("a", "2026-07-01", "09:00", "10:00"),
		},
	}

	res := CheckConflicts(permessoRequest("2026-07-01", "10:00", "11:00"), src)

	assert.True(t, res.IsValid)
}

func TestCheckConflicts_PermessoAgainstFerieBlocksWholeDay(t *testing.T) {
	existing := ferieRequest("2026-07-01", "2026-07-03")
	existing.ID = "existing"

	res := CheckConflicts(permessoRequest("2026-07-02", "09:00", "10:00"), ConflictSources{
		Leaves: []leave.LeaveRequest{existing},
	})

	assert.False(t, res.IsValid)
}

func TestCheckConflicts_SickLeaveAndBusinessTrip(t *testing.T) {
	res := CheckConflicts(ferieRequest("2026-07-01", "2026-07-05"), ConflictSources{
		SickLeaves: []attendance.SickLeave{
			{DateFrom: *datePtr("2026-07-04"), DateTo: *datePtr("2026-07-06")},
		},
		BusinessTrips: []attendance.BusinessTrip{
			{DateFrom: *datePtr("2026-06-30"), DateTo: *datePtr("2026-07-01")},
		},
	})

	assert.False(t, res.IsValid)
	assert.Len(t, res.Conflicts, 2)
}

func TestCheckConflicts_SkipsOwnRecordAndCascadeRows(t *testing.T) {
	self := ferieRequest("2026-07-01", "2026-07-05")
	self.ID = "self"

	leaveID := "self"
	res := CheckConflicts(self, ConflictSources{
		Leaves: []leave.LeaveRequest{self},
		Attendances: []attendance.UnifiedAttendance{
			{Date: *datePtr("2026-07-02"), LeaveRequestID: &leaveID},
		},
	})

	assert.True(t, res.IsValid)
}

func TestCheckConflicts_ManualAttendanceConflicts(t *testing.T) {
	res := CheckConflicts(ferieRequest("2026-07-01", "2026-07-05"), ConflictSources{
		Attendances: []attendance.UnifiedAttendance{
			{Date: *datePtr("2026-07-03")},
		},
	})

	assert.False(t, res.IsValid)
}
