package schedule

import "context"

type Repository interface {
	// Get returns the singleton schedule, ErrScheduleNotFound when unset.
	Get(ctx context.Context) (WorkSchedule, error)
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
}
