package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	id, user_id, year, vacation_days_total, vacation_days_used,
	permission_hours_total, permission_hours_used, created_at, updated_at`

// GetByUserYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByUserYear(ctx context.Context, userID string, year int) (leave.LeaveBalance, error) {
	return r.getByUserYear(ctx, userID, year, false)
}

// GetByUserYearForUpdate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByUserYearForUpdate(ctx context.Context, userID string, year int) (leave.LeaveBalance, error) {
	return r.getByUserYear(ctx, userID, year, true)
}

func (r *leaveBalanceRepositoryImpl) getByUserYear(ctx context.Context, userID string, year int, forUpdate bool) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE user_id = $1 AND year = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&b.ID, &b.UserID, &b.Year,
		&b.VacationDaysTotal, &b.VacationDaysUsed,
		&b.PermissionHoursTotal, &b.PermissionHoursUsed,
		&b.CreatedAt, &b.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

// Upsert implements leave.LeaveBalanceRepository. Totals are replaced, usage
// counters survive.
func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances
			(id, user_id, year, vacation_days_total, vacation_days_used,
			 permission_hours_total, permission_hours_used, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 0, $4, 0, NOW(), NOW())
		ON CONFLICT (user_id, year) DO UPDATE
		SET vacation_days_total = EXCLUDED.vacation_days_total,
			permission_hours_total = EXCLUDED.permission_hours_total,
			updated_at = NOW()
		RETURNING` + leaveBalanceColumns

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		balance.UserID, balance.Year,
		balance.VacationDaysTotal, balance.PermissionHoursTotal,
	).Scan(
		&b.ID, &b.UserID, &b.Year,
		&b.VacationDaysTotal, &b.VacationDaysUsed,
		&b.PermissionHoursTotal, &b.PermissionHoursUsed,
		&b.CreatedAt, &b.UpdatedAt,
	)

	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return b, nil
}

// AddUsage implements leave.LeaveBalanceRepository. Negative deltas re-credit.
func (r *leaveBalanceRepositoryImpl) AddUsage(ctx context.Context, userID string, year int, vacationDays, permissionHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET vacation_days_used = vacation_days_used + $1,
			permission_hours_used = permission_hours_used + $2,
			updated_at = NOW()
		WHERE user_id = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, vacationDays, permissionHours, userID, year)
	if err != nil {
		return fmt.Errorf("failed to update leave balance usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

// ListByYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE year = $1
		ORDER BY user_id
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Year,
			&b.VacationDaysTotal, &b.VacationDaysUsed,
			&b.PermissionHoursTotal, &b.PermissionHoursUsed,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return balances, nil
}
