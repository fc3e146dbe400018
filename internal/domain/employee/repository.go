package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
}
