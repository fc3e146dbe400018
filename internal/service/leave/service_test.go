package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the service tests. The transactor runs the
// function directly; rollback behavior is not simulated.

type stubTx struct{}

func (stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRequestRepo struct {
	byID map[string]leave.LeaveRequest
	seq  int
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{byID: map[string]leave.LeaveRequest{}}
}

func (r *memRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.seq++
	req.ID = fmt.Sprintf("req-%d", r.seq)
	r.byID[req.ID] = req
	return req, nil
}

func (r *memRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *memRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *memRequestRepo) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *memRequestRepo) ListByUser(ctx context.Context, userID string, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *memRequestRepo) ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.byID {
		if req.UserID != userID || req.Status != leave.StatusApproved {
			continue
		}
		f, t := req.Range()
		if !f.After(to) && !from.After(t) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) UpdateStatus(ctx context.Context, update leave.UpdateStatusRequest) error {
	req, ok := r.byID[update.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = update.Status
	req.AdminNote = update.AdminNote
	req.ReviewedBy = &update.ReviewedBy
	req.ReviewedAt = &update.ReviewedAt
	r.byID[update.ID] = req
	return nil
}

func (r *memRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(r.byID, id)
	return nil
}

type memBalanceRepo struct {
	byKey map[string]leave.LeaveBalance
}

func newMemBalanceRepo() *memBalanceRepo {
	return &memBalanceRepo{byKey: map[string]leave.LeaveBalance{}}
}

func balanceKey(userID string, year int) string {
	return fmt.Sprintf("%s/%d", userID, year)
}

func (r *memBalanceRepo) GetByUserYear(ctx context.Context, userID string, year int) (leave.LeaveBalance, error) {
	b, ok := r.byKey[balanceKey(userID, year)]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (r *memBalanceRepo) GetByUserYearForUpdate(ctx context.Context, userID string, year int) (leave.LeaveBalance, error) {
	return r.GetByUserYear(ctx, userID, year)
}

func (r *memBalanceRepo) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.byKey[balanceKey(balance.UserID, balance.Year)] = balance
	return balance, nil
}

func (r *memBalanceRepo) AddUsage(ctx context.Context, userID string, year int, vacationDays, permissionHours float64) error {
	key := balanceKey(userID, year)
	b, ok := r.byKey[key]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	b.VacationDaysUsed += vacationDays
	b.PermissionHoursUsed += permissionHours
	r.byKey[key] = b
	return nil
}

func (r *memBalanceRepo) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	return nil, nil
}

type memEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (r *memEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	emp, ok := r.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *memEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *memEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
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
		if row.UserID != userID {
			continue
		}
		if from != nil && row.Date.Before(*from) {
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}
		out = append(out, row)
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

type memScheduleRepo struct{}

func (memScheduleRepo) Get(ctx context.Context) (schedule.WorkSchedule, error) {
	return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
}

func (memScheduleRepo) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	return ws, nil
}

type leaveFixture struct {
	svc         leave.Service
	requestRepo *memRequestRepo
	balanceRepo *memBalanceRepo
	unifiedRepo *memUnifiedRepo
}

func newLeaveFixture(emp employee.Employee) leaveFixture {
	requestRepo := newMemRequestRepo()
	balanceRepo := newMemBalanceRepo()
	unifiedRepo := &memUnifiedRepo{}

	svc := NewLeaveService(
		stubTx{},
		requestRepo,
		balanceRepo,
		&memEmployeeRepo{byUserID: map[string]employee.Employee{emp.UserID: emp}},
		unifiedRepo,
		memSickRepo{},
		memTripRepo{},
		memScheduleRepo{},
		nil,
	)

	return leaveFixture{
		svc:         svc,
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		unifiedRepo: unifiedRepo,
	}
}

func testEmployee(hireDate string) employee.Employee {
	hired, _ := time.Parse("2006-01-02", hireDate)
	return employee.Employee{
		ID:        "emp-1",
		UserID:    "user-1",
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario.rossi@example.com",
		HireDate:  hired,
		IsActive:  true,
	}
}

func TestSubmit_StartBeforeHireDateRejected(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2026-03-01"))
	fix.balanceRepo.byKey[balanceKey("user-1", 2026)] = leave.LeaveBalance{
		UserID: "user-1", Year: 2026, VacationDaysTotal: 22,
	}

	_, err := fix.svc.Submit(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:   "user-1",
		Type:     "ferie",
		DateFrom: "2026-02-10",
		DateTo:   "2026-02-12",
	})

	assert.ErrorIs(t, err, leave.ErrBeforeHireDate)
	assert.Empty(t, fix.requestRepo.byID)
}

func TestSubmit_AfterHireDateAccepted(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2026-03-01"))
	fix.balanceRepo.byKey[balanceKey("user-1", 2026)] = leave.LeaveBalance{
		UserID: "user-1", Year: 2026, VacationDaysTotal: 22,
	}

	created, err := fix.svc.Submit(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:   "user-1",
		Type:     "ferie",
		DateFrom: "2026-07-01",
		DateTo:   "2026-07-03",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
}

func TestDelete_ApprovedRemovesCascadeAndRecredits(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2020-01-01"))
	fix.balanceRepo.byKey[balanceKey("user-1", 2026)] = leave.LeaveBalance{
		UserID: "user-1", Year: 2026,
		VacationDaysTotal: 22, VacationDaysUsed: 3,
	}

	req := ferieRequest("2026-07-01", "2026-07-03")
	req.UserID = "user-1"
	req.Status = leave.StatusApproved
	stored, err := fix.requestRepo.Create(context.Background(), req)
	require.NoError(t, err)

	for d := *req.DateFrom; !d.After(*req.DateTo); d = d.AddDate(0, 0, 1) {
		_, err := fix.unifiedRepo.Create(context.Background(), attendance.UnifiedAttendance{
			UserID:         "user-1",
			Date:           d,
			LeaveRequestID: &stored.ID,
		})
		require.NoError(t, err)
	}

	require.NoError(t, fix.svc.Delete(context.Background(), stored.ID))

	_, err = fix.requestRepo.GetByID(context.Background(), stored.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	assert.Empty(t, fix.unifiedRepo.rows)

	balance, err := fix.balanceRepo.GetByUserYear(context.Background(), "user-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.VacationDaysUsed)
}

func TestDelete_PendingLeavesBalanceUntouched(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2020-01-01"))
	fix.balanceRepo.byKey[balanceKey("user-1", 2026)] = leave.LeaveBalance{
		UserID: "user-1", Year: 2026,
		VacationDaysTotal: 22, VacationDaysUsed: 5,
	}

	req := ferieRequest("2026-07-01", "2026-07-03")
	req.UserID = "user-1"
	req.Status = leave.StatusPending
	stored, err := fix.requestRepo.Create(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, fix.svc.Delete(context.Background(), stored.ID))

	balance, err := fix.balanceRepo.GetByUserYear(context.Background(), "user-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 5.0, balance.VacationDaysUsed)
}

func TestReject_AlreadyApprovedIsNotOverwritten(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2020-01-01"))

	req := ferieRequest("2026-07-01", "2026-07-03")
	req.UserID = "user-1"
	req.Status = leave.StatusApproved
	stored, err := fix.requestRepo.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = fix.svc.Reject(context.Background(), leave.ReviewRequest{
		RequestID:  stored.ID,
		ReviewerID: "admin-1",
	})

	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	current, err := fix.requestRepo.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, current.Status)
}

func TestReject_PendingTransitionsWithoutSideEffects(t *testing.T) {
	fix := newLeaveFixture(testEmployee("2020-01-01"))
	fix.balanceRepo.byKey[balanceKey("user-1", 2026)] = leave.LeaveBalance{
		UserID: "user-1", Year: 2026, VacationDaysTotal: 22,
	}

	req := ferieRequest("2026-07-01", "2026-07-03")
	req.UserID = "user-1"
	req.Status = leave.StatusPending
	stored, err := fix.requestRepo.Create(context.Background(), req)
	require.NoError(t, err)

	result, err := fix.svc.Reject(context.Background(), leave.ReviewRequest{
		RequestID:  stored.ID,
		ReviewerID: "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, result.Request.Status)
	assert.Empty(t, fix.unifiedRepo.rows)

	balance, err := fix.balanceRepo.GetByUserYear(context.Background(), "user-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.VacationDaysUsed)
}
