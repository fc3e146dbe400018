package overtime

import "context"

type Service interface {
	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeRecord, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Delete(ctx context.Context, id string) error
	// DisabledDates returns the days in the month that already carry an
	// absence, attendance or overtime entry for the user.
	DisabledDates(ctx context.Context, userID string, year, month int) (DisabledDatesResponse, error)
}
