package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}

type UnifiedAttendanceRepository interface {
	Create(ctx context.Context, a UnifiedAttendance) (UnifiedAttendance, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]UnifiedAttendance, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]UnifiedAttendance, error)
	// DeleteByLeaveRequestID removes the rows an approval materialized;
	// used when an approved request is deleted.
	DeleteByLeaveRequestID(ctx context.Context, leaveRequestID string) error
	// DeleteByAttendanceID removes the mirror row of a plain attendance
	// record; used when that record is deleted.
	DeleteByAttendanceID(ctx context.Context, attendanceID string) error
	Delete(ctx context.Context, id string) error
}

type SickLeaveRepository interface {
	Create(ctx context.Context, s SickLeave) (SickLeave, error)
	ListByUser(ctx context.Context, userID string) ([]SickLeave, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]SickLeave, error)
	Delete(ctx context.Context, id string) error
}

type BusinessTripRepository interface {
	Create(ctx context.Context, t BusinessTrip) (BusinessTrip, error)
	ListByUser(ctx context.Context, userID string) ([]BusinessTrip, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]BusinessTrip, error)
	Delete(ctx context.Context, id string) error
}
