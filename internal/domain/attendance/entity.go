package attendance

import "time"

// Attendance is a plain daily presence record with optional clock times.
type Attendance struct {
	ID       string
	UserID   string
	Date     time.Time
	CheckIn  *string // "HH:MM"
	CheckOut *string // "HH:MM"
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnifiedAttendance is the consolidated calendar record: one row per covered
// day, flagged by origin. Rows created as a side effect of a leave approval
// carry the originating request id, mirrors of plain attendance records carry
// the originating attendance id, so deleting the source cascades here.
type UnifiedAttendance struct {
	ID             string
	UserID         string
	Date           time.Time
	CheckIn        *string
	CheckOut       *string
	IsSickLeave    bool
	IsBusinessTrip bool
	LeaveRequestID *string
	AttendanceID   *string
	Notes          *string
	CreatedBy      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SickLeave is a date-ranged absence record, conflict source only.
type SickLeave struct {
	ID       string
	UserID   string
	DateFrom time.Time
	DateTo   time.Time
	Note     *string

	CreatedAt time.Time
}

// BusinessTrip is a date-ranged trip record, conflict source only.
type BusinessTrip struct {
	ID          string
	UserID      string
	DateFrom    time.Time
	DateTo      time.Time
	Destination *string
	Note        *string

	CreatedAt time.Time
}
