package employee

import "context"

type Service interface {
	// Create provisions the auth account and the profile together.
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
}
