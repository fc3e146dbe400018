package overtime

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec OvertimeRecord) (OvertimeRecord, error)
	GetByID(ctx context.Context, id string) (OvertimeRecord, error)
	List(ctx context.Context, filter Filter) ([]OvertimeRecord, int64, error)
	// ExistsOnDate reports whether the user already has an overtime entry
	// for the calendar date.
	ExistsOnDate(ctx context.Context, userID string, date time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}
