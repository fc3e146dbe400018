package schedule

import "context"

type Service interface {
	Get(ctx context.Context) (WorkSchedule, error)
	Upsert(ctx context.Context, req UpsertScheduleRequest) (WorkSchedule, error)
}
