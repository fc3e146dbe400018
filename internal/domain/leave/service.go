package leave

import "context"

type Service interface {
	Submit(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	ManualEntry(ctx context.Context, req ManualLeaveEntryRequest) (ReviewResult, error)
	Approve(ctx context.Context, req ReviewRequest) (ReviewResult, error)
	Reject(ctx context.Context, req ReviewRequest) (ReviewResult, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	ListMine(ctx context.Context, userID string, filter Filter) (ListResponse, error)

	GetBalance(ctx context.Context, userID string, year int) (LeaveBalance, error)
	SetBalance(ctx context.Context, req SetBalanceRequest) (LeaveBalance, error)
}
