package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.type, lr.date_from, lr.date_to, lr.day,
	lr.time_from, lr.time_to, lr.note, lr.admin_note, lr.status,
	lr.reviewed_by, lr.reviewed_at, lr.created_at, lr.updated_at`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests
			(id, user_id, type, date_from, date_to, day, time_from, time_to,
			 note, admin_note, status, reviewed_by, reviewed_at, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := req
	err := q.QueryRow(ctx, query,
		req.UserID, req.Type, req.DateFrom, req.DateTo, req.Day,
		req.TimeFrom, req.TimeTo, req.Note, req.AdminNote, req.Status,
		req.ReviewedBy, req.ReviewedAt,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return result, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1`
	if forUpdate {
		// Lock held until the surrounding transaction ends.
		query += ` FOR UPDATE`
	}

	result, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return result, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	return r.list(ctx, nil, filter)
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	return r.list(ctx, &userID, filter)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, userID *string, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if userID != nil {
		where += fmt.Sprintf(" AND lr.user_id = $%d", argIdx)
		args = append(args, *userID)
		argIdx++
	} else if filter.UserID != nil {
		where += fmt.Sprintf(" AND lr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Type != nil {
		where += fmt.Sprintf(" AND lr.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND COALESCE(lr.date_to, lr.day) >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND COALESCE(lr.date_from, lr.day) <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	sortBy := "lr.created_at"
	if filter.SortBy == "date" {
		sortBy = "COALESCE(lr.date_from, lr.day)"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT%s,
			TRIM(CONCAT(e.first_name, ' ', e.last_name)) AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.user_id = lr.user_id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.DateFrom, &req.DateTo, &req.Day,
			&req.TimeFrom, &req.TimeTo, &req.Note, &req.AdminNote, &req.Status,
			&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

// ListApprovedInRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive intersection on both ends, covering both request shapes.
	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.user_id = $1
		  AND lr.status = 'approved'
		  AND COALESCE(lr.date_from, lr.day) <= $3
		  AND COALESCE(lr.date_to, lr.day) >= $2
		ORDER BY COALESCE(lr.date_from, lr.day) ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.DateFrom, &req.DateTo, &req.Day,
			&req.TimeFrom, &req.TimeTo, &req.Note, &req.AdminNote, &req.Status,
			&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, admin_note = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.AdminNote, req.ReviewedBy, req.ReviewedAt, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.Type, &req.DateFrom, &req.DateTo, &req.Day,
		&req.TimeFrom, &req.TimeTo, &req.Note, &req.AdminNote, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}
