package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
)

type sickLeaveRepositoryImpl struct {
	db *database.DB
}

func NewSickLeaveRepository(db *database.DB) attendance.SickLeaveRepository {
	return &sickLeaveRepositoryImpl{db: db}
}

// Create implements attendance.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) Create(ctx context.Context, s attendance.SickLeave) (attendance.SickLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sick_leaves (id, user_id, date_from, date_to, note, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	result := s
	err := q.QueryRow(ctx, query, s.UserID, s.DateFrom, s.DateTo, s.Note).
		Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return attendance.SickLeave{}, fmt.Errorf("failed to create sick leave: %w", err)
	}

	return result, nil
}

// ListByUser implements attendance.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.SickLeave, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

// ListByUserRange implements attendance.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.SickLeave, error) {
	return r.list(ctx, `WHERE user_id = $1 AND date_from <= $3 AND date_to >= $2`, userID, from, to)
}

func (r *sickLeaveRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]attendance.SickLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_from, date_to, note, created_at
		FROM sick_leaves
		` + where + `
		ORDER BY date_from DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sick leaves: %w", err)
	}
	defer rows.Close()

	var records []attendance.SickLeave
	for rows.Next() {
		var s attendance.SickLeave
		err := rows.Scan(&s.ID, &s.UserID, &s.DateFrom, &s.DateTo, &s.Note, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sick leave: %w", err)
		}
		records = append(records, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Delete implements attendance.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sick_leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sick leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSickLeaveNotFound
	}

	return nil
}
