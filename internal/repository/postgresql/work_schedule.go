package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.Repository {
	return &workScheduleRepositoryImpl{db: db}
}

const workScheduleColumns = `
	id, start_time, end_time, monday, tuesday, wednesday, thursday, friday,
	saturday, sunday, tolerance_minutes, created_at, updated_at`

// Get implements schedule.Repository. The table holds at most one row.
func (r *workScheduleRepositoryImpl) Get(ctx context.Context) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + workScheduleColumns + `
		FROM work_schedules
		LIMIT 1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query).Scan(
		&ws.ID, &ws.StartTime, &ws.EndTime,
		&ws.Monday, &ws.Tuesday, &ws.Wednesday, &ws.Thursday, &ws.Friday,
		&ws.Saturday, &ws.Sunday, &ws.ToleranceMinutes,
		&ws.CreatedAt, &ws.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

// Upsert implements schedule.Repository.
func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, in schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	// Singleton row keyed by a fixed id.
	query := `
		INSERT INTO work_schedules
			(id, start_time, end_time, monday, tuesday, wednesday, thursday, friday,
			 saturday, sunday, tolerance_minutes, created_at, updated_at)
		VALUES ('00000000-0000-0000-0000-000000000001', $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			saturday = EXCLUDED.saturday,
			sunday = EXCLUDED.sunday,
			tolerance_minutes = EXCLUDED.tolerance_minutes,
			updated_at = NOW()
		RETURNING` + workScheduleColumns

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query,
		in.StartTime, in.EndTime,
		in.Monday, in.Tuesday, in.Wednesday, in.Thursday, in.Friday,
		in.Saturday, in.Sunday, in.ToleranceMinutes,
	).Scan(
		&ws.ID, &ws.StartTime, &ws.EndTime,
		&ws.Monday, &ws.Tuesday, &ws.Wednesday, &ws.Thursday, &ws.Friday,
		&ws.Saturday, &ws.Sunday, &ws.ToleranceMinutes,
		&ws.CreatedAt, &ws.UpdatedAt,
	)

	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return ws, nil
}
