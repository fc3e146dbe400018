package attendance

import (
	"context"
	"time"
)

type Service interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (Attendance, error)
	ListAttendance(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error

	ListUnified(ctx context.Context, userID string, from, to *time.Time) ([]UnifiedAttendance, error)

	CreateSickLeave(ctx context.Context, req CreateRangeRequest) (SickLeave, error)
	ListSickLeaves(ctx context.Context, userID string) ([]SickLeave, error)
	DeleteSickLeave(ctx context.Context, id string) error

	CreateBusinessTrip(ctx context.Context, req CreateRangeRequest) (BusinessTrip, error)
	ListBusinessTrips(ctx context.Context, userID string) ([]BusinessTrip, error)
	DeleteBusinessTrip(ctx context.Context, id string) error
}
