package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
)

type businessTripRepositoryImpl struct {
	db *database.DB
}

func NewBusinessTripRepository(db *database.DB) attendance.BusinessTripRepository {
	return &businessTripRepositoryImpl{db: db}
}

// Create implements attendance.BusinessTripRepository.
func (r *businessTripRepositoryImpl) Create(ctx context.Context, t attendance.BusinessTrip) (attendance.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_trips (id, user_id, date_from, date_to, destination, note, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	result := t
	err := q.QueryRow(ctx, query, t.UserID, t.DateFrom, t.DateTo, t.Destination, t.Note).
		Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return attendance.BusinessTrip{}, fmt.Errorf("failed to create business trip: %w", err)
	}

	return result, nil
}

// ListByUser implements attendance.BusinessTripRepository.
func (r *businessTripRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.BusinessTrip, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

// ListByUserRange implements attendance.BusinessTripRepository.
func (r *businessTripRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.BusinessTrip, error) {
	return r.list(ctx, `WHERE user_id = $1 AND date_from <= $3 AND date_to >= $2`, userID, from, to)
}

func (r *businessTripRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]attendance.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_from, date_to, destination, note, created_at
		FROM business_trips
		` + where + `
		ORDER BY date_from DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list business trips: %w", err)
	}
	defer rows.Close()

	var records []attendance.BusinessTrip
	for rows.Next() {
		var t attendance.BusinessTrip
		err := rows.Scan(&t.ID, &t.UserID, &t.DateFrom, &t.DateTo, &t.Destination, &t.Note, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business trip: %w", err)
		}
		records = append(records, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Delete implements attendance.BusinessTripRepository.
func (r *businessTripRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM business_trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrTripNotFound
	}

	return nil
}
