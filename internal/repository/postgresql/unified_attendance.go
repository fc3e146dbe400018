package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
)

type unifiedAttendanceRepositoryImpl struct {
	db *database.DB
}

func NewUnifiedAttendanceRepository(db *database.DB) attendance.UnifiedAttendanceRepository {
	return &unifiedAttendanceRepositoryImpl{db: db}
}

const unifiedColumns = `
	id, user_id, date, check_in, check_out, is_sick_leave, is_business_trip,
	leave_request_id, attendance_id, notes, created_by, created_at, updated_at`

// Create implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) Create(ctx context.Context, a attendance.UnifiedAttendance) (attendance.UnifiedAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO unified_attendances
			(id, user_id, date, check_in, check_out, is_sick_leave, is_business_trip,
			 leave_request_id, attendance_id, notes, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := a
	err := q.QueryRow(ctx, query,
		a.UserID, a.Date, a.CheckIn, a.CheckOut, a.IsSickLeave, a.IsBusinessTrip,
		a.LeaveRequestID, a.AttendanceID, a.Notes, a.CreatedBy,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return attendance.UnifiedAttendance{}, fmt.Errorf("failed to create unified attendance: %w", err)
	}

	return result, nil
}

// ListByUser implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]attendance.UnifiedAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + unifiedColumns + `
		FROM unified_attendances
		WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}
	query += ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list unified attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.UnifiedAttendance
	for rows.Next() {
		var a attendance.UnifiedAttendance
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.IsSickLeave, &a.IsBusinessTrip, &a.LeaveRequestID, &a.AttendanceID,
			&a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unified attendance: %w", err)
		}
		records = append(records, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// ListByUserRange implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.UnifiedAttendance, error) {
	return r.ListByUser(ctx, userID, &from, &to)
}

// DeleteByLeaveRequestID implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) DeleteByLeaveRequestID(ctx context.Context, leaveRequestID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM unified_attendances WHERE leave_request_id = $1`, leaveRequestID)
	if err != nil {
		return fmt.Errorf("failed to delete unified attendances for leave request: %w", err)
	}

	return nil
}

// DeleteByAttendanceID implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) DeleteByAttendanceID(ctx context.Context, attendanceID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM unified_attendances WHERE attendance_id = $1`, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to delete unified attendance mirror: %w", err)
	}

	return nil
}

// Delete implements attendance.UnifiedAttendanceRepository.
func (r *unifiedAttendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM unified_attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unified attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
