package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, int64, error)
	ListByUser(ctx context.Context, userID string, filter Filter) ([]LeaveRequest, int64, error)
	// ListApprovedInRange returns approved requests for the user whose
	// covered dates intersect [from, to] inclusive.
	ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
}

type LeaveBalanceRepository interface {
	GetByUserYear(ctx context.Context, userID string, year int) (LeaveBalance, error)
	// GetByUserYearForUpdate locks the balance row; used inside the
	// approval transaction to serialize concurrent decrements.
	GetByUserYearForUpdate(ctx context.Context, userID string, year int) (LeaveBalance, error)
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	AddUsage(ctx context.Context, userID string, year int, vacationDays, permissionHours float64) error
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}
