package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/overtime"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepositoryImpl{db: db}
}

// Create implements overtime.Repository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, rec overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (id, user_id, date, hours, notes, created_by, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	result := rec
	err := q.QueryRow(ctx, query,
		rec.UserID, rec.Date, rec.Hours, rec.Notes, rec.CreatedBy,
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return result, nil
}

// GetByID implements overtime.Repository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, hours, notes, created_by, created_at
		FROM overtime_records
		WHERE id = $1
	`

	var rec overtime.OvertimeRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Hours,
		&rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

// List implements overtime.Repository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.Filter) ([]overtime.OvertimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		where += fmt.Sprintf(" AND o.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM o.date) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM o.date) = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_records o` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.user_id, o.date, o.hours, o.notes, o.created_by, o.created_at,
			TRIM(CONCAT(e.first_name, ' ', e.last_name)) AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.user_id = o.user_id
		%s
		ORDER BY o.date DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		var rec overtime.OvertimeRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Hours,
			&rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, total, nil
}

// ExistsOnDate implements overtime.Repository.
func (r *overtimeRepositoryImpl) ExistsOnDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM overtime_records WHERE user_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overtime record: %w", err)
	}

	return exists, nil
}

// Delete implements overtime.Repository.
func (r *overtimeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}
