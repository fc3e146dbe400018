package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct{}

func (stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memAttendanceRepo struct {
	byID map[string]attendance.Attendance
	seq  int
}

func (r *memAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.seq++
	a.ID = fmt.Sprintf("att-%d", r.seq)
	r.byID[a.ID] = a
	return a, nil
}

func (r *memAttendanceRepo) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAttendanceRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	return r.ListByUser(ctx, userID, &from, &to)
}

func (r *memAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.byID, id)
	return nil
}

type memUnifiedRepo struct {
	rows []attendance.UnifiedAttendance
	seq  int
}

func (r *memUnifiedRepo) Create(ctx context.Context, a attendance.UnifiedAttendance) (attendance.UnifiedAttendance, error) {
	r.seq++
	a.ID = fmt.Sprintf("ua-%d", r.seq)
	r.rows = append(r.rows, a)
	return a, nil
}

func (r *memUnifiedRepo) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]attendance.UnifiedAttendance, error) {
	var out []attendance.UnifiedAttendance
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memUnifiedRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.UnifiedAttendance, error) {
	return r.ListByUser(ctx, userID, &from, &to)
}

func (r *memUnifiedRepo) DeleteByLeaveRequestID(ctx context.Context, leaveRequestID string) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.LeaveRequestID == nil || *row.LeaveRequestID != leaveRequestID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *memUnifiedRepo) DeleteByAttendanceID(ctx context.Context, attendanceID string) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.AttendanceID == nil || *row.AttendanceID != attendanceID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *memUnifiedRepo) Delete(ctx context.Context, id string) error {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type memSickRepo struct{}

func (memSickRepo) Create(ctx context.Context, s attendance.SickLeave) (attendance.SickLeave, error) {
	return s, nil
}

func (memSickRepo) ListByUser(ctx context.Context, userID string) ([]attendance.SickLeave, error) {
	return nil, nil
}

func (memSickRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.SickLeave, error) {
	return nil, nil
}

func (memSickRepo) Delete(ctx context.Context, id string) error { return nil }

type memTripRepo struct{}

func (memTripRepo) Create(ctx context.Context, t attendance.BusinessTrip) (attendance.BusinessTrip, error) {
	return t, nil
}

func (memTripRepo) ListByUser(ctx context.Context, userID string) ([]attendance.BusinessTrip, error) {
	return nil, nil
}

func (memTripRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.BusinessTrip, error) {
	return nil, nil
}

func (memTripRepo) Delete(ctx context.Context, id string) error { return nil }

func newFixture() (attendance.Service, *memAttendanceRepo, *memUnifiedRepo) {
	attendanceRepo := &memAttendanceRepo{byID: map[string]attendance.Attendance{}}
	unifiedRepo := &memUnifiedRepo{}

	svc := NewAttendanceService(stubTx{}, attendanceRepo, unifiedRepo, memSickRepo{}, memTripRepo{})
	return svc, attendanceRepo, unifiedRepo
}

func TestCreateAttendance_MirrorsIntoUnifiedCalendar(t *testing.T) {
	svc, _, unifiedRepo := newFixture()

	created, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		UserID: "user-1",
		Date:   "2026-07-01",
	})

	require.NoError(t, err)
	require.Len(t, unifiedRepo.rows, 1)
	require.NotNil(t, unifiedRepo.rows[0].AttendanceID)
	assert.Equal(t, created.ID, *unifiedRepo.rows[0].AttendanceID)
	assert.Equal(t, "user-1", unifiedRepo.rows[0].UserID)
}

func TestDeleteAttendance_RemovesUnifiedMirror(t *testing.T) {
	svc, attendanceRepo, unifiedRepo := newFixture()

	created, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		UserID: "user-1",
		Date:   "2026-07-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(context.Background(), created.ID))

	assert.Empty(t, attendanceRepo.byID)
	assert.Empty(t, unifiedRepo.rows, "mirror row must not survive the record it mirrors")
}

func TestDeleteAttendance_KeepsLeaveCascadeRows(t *testing.T) {
	svc, _, unifiedRepo := newFixture()

	leaveRequestID := "req-1"
	day, _ := time.Parse("2006-01-02", "2026-07-01")
	_, err := unifiedRepo.Create(context.Background(), attendance.UnifiedAttendance{
		UserID:         "user-1",
		Date:           day,
		LeaveRequestID: &leaveRequestID,
	})
	require.NoError(t, err)

	created, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		UserID: "user-1",
		Date:   "2026-07-02",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(context.Background(), created.ID))

	require.Len(t, unifiedRepo.rows, 1)
	assert.Equal(t, leaveRequestID, *unifiedRepo.rows[0].LeaveRequestID)
}
