package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	domainSchedule "github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/gestionale-hr/hr-backend-go/internal/repository/postgresql"
	scheduleService "github.com/gestionale-hr/hr-backend-go/internal/service/schedule"
)

// DecisionNotifier delivers the best-effort employee notification after an
// approval or rejection. Implemented by the notification service; failures
// never roll back the decision.
type DecisionNotifier interface {
	NotifyLeaveDecision(ctx context.Context, request leave.LeaveRequest, emp employee.Employee) error
}

type LeaveService struct {
	tx           postgresql.Transactor
	requestRepo  leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.Repository
	unifiedRepo  attendance.UnifiedAttendanceRepository
	sickRepo     attendance.SickLeaveRepository
	tripRepo     attendance.BusinessTripRepository
	scheduleRepo domainSchedule.Repository
	notifier     DecisionNotifier
}

func NewLeaveService(
	tx postgresql.Transactor,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.Repository,
	unifiedRepo attendance.UnifiedAttendanceRepository,
	sickRepo attendance.SickLeaveRepository,
	tripRepo attendance.BusinessTripRepository,
	scheduleRepo domainSchedule.Repository,
	notifier DecisionNotifier,
) leave.Service {
	return &LeaveService{
		tx:           tx,
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		unifiedRepo:  unifiedRepo,
		sickRepo:     sickRepo,
		tripRepo:     tripRepo,
		scheduleRepo: scheduleRepo,
		notifier:     notifier,
	}
}

// Submit validates an employee request and stores it in pending state.
func (s *LeaveService) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	request := req.ToEntity()

	if err := s.validateSubmission(ctx, request); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// ManualEntry creates an admin record directly in approved state, applying
// the balance decrement and the attendance side effect in one transaction.
func (s *LeaveService) ManualEntry(ctx context.Context, req leave.ManualLeaveEntryRequest) (leave.ReviewResult, error) {
	request := req.ToEntity()
	now := time.Now()
	request.ReviewedBy = &req.CreatedBy
	request.ReviewedAt = &now

	if err := s.validateSubmission(ctx, request); err != nil {
		return leave.ReviewResult{}, err
	}

	var created leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.requestRepo.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create manual leave entry: %w", err)
		}

		return s.applyApproval(txCtx, created)
	})
	if err != nil {
		return leave.ReviewResult{}, err
	}

	return leave.ReviewResult{Request: created}, nil
}

// Approve transitions pending -> approved. The balance row is locked and
// re-checked inside the transaction so two concurrent approvals cannot
// double-spend the same allotment.
func (s *LeaveService) Approve(ctx context.Context, req leave.ReviewRequest) (leave.ReviewResult, error) {
	var request leave.LeaveRequest

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.requestRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		update := leave.UpdateStatusRequest{
			ID:         request.ID,
			Status:     leave.StatusApproved,
			AdminNote:  req.AdminNote,
			ReviewedBy: req.ReviewerID,
			ReviewedAt: now,
		}
		if err := s.requestRepo.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		request.Status = leave.StatusApproved
		request.AdminNote = req.AdminNote
		request.ReviewedBy = &req.ReviewerID
		request.ReviewedAt = &now
		request.NotifyEmployee = req.NotifyEmployee

		return s.applyApproval(txCtx, request)
	})
	if err != nil {
		return leave.ReviewResult{}, err
	}

	return s.notifyDecision(ctx, request, req.NotifyEmployee), nil
}

// Reject transitions pending -> rejected. No balance or attendance effects,
// but the row is still locked and re-checked inside the transaction so a
// reject racing a concurrent approve cannot overwrite the settled decision.
func (s *LeaveService) Reject(ctx context.Context, req leave.ReviewRequest) (leave.ReviewResult, error) {
	var request leave.LeaveRequest

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.requestRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		update := leave.UpdateStatusRequest{
			ID:         request.ID,
			Status:     leave.StatusRejected,
			AdminNote:  req.AdminNote,
			ReviewedBy: req.ReviewerID,
			ReviewedAt: now,
		}
		if err := s.requestRepo.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		request.Status = leave.StatusRejected
		request.AdminNote = req.AdminNote
		request.ReviewedBy = &req.ReviewerID
		request.ReviewedAt = &now

		return nil
	})
	if err != nil {
		return leave.ReviewResult{}, err
	}

	return s.notifyDecision(ctx, request, req.NotifyEmployee), nil
}

// Delete removes a request. Approved requests also lose their materialized
// attendance rows and the balance usage is re-credited, in one transaction.
func (s *LeaveService) Delete(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if request.Status == leave.StatusApproved {
			if err := s.unifiedRepo.DeleteByLeaveRequestID(txCtx, request.ID); err != nil {
				return fmt.Errorf("failed to delete cascade attendance rows: %w", err)
			}

			days, hours := usageCost(request)
			from, _ := request.Range()
			if err := s.balanceRepo.AddUsage(txCtx, request.UserID, from.Year(), -days, -hours); err != nil {
				return fmt.Errorf("failed to re-credit leave balance: %w", err)
			}
		}

		if err := s.requestRepo.Delete(txCtx, request.ID); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}

		return nil
	})
}

func (s *LeaveService) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *LeaveService) List(ctx context.Context, filter leave.Filter) (leave.ListResponse, error) {
	normalizeFilter(&filter)

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ListResponse{
		Requests: requests,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *LeaveService) ListMine(ctx context.Context, userID string, filter leave.Filter) (leave.ListResponse, error) {
	normalizeFilter(&filter)

	requests, total, err := s.requestRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list own leave requests: %w", err)
	}

	return leave.ListResponse{
		Requests: requests,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *LeaveService) GetBalance(ctx context.Context, userID string, year int) (leave.LeaveBalance, error) {
	return s.balanceRepo.GetByUserYear(ctx, userID, year)
}

func (s *LeaveService) SetBalance(ctx context.Context, req leave.SetBalanceRequest) (leave.LeaveBalance, error) {
	balance := leave.LeaveBalance{
		UserID:               req.UserID,
		Year:                 req.Year,
		VacationDaysTotal:    req.VacationDaysTotal,
		PermissionHoursTotal: req.PermissionHoursTotal,
	}

	saved, err := s.balanceRepo.Upsert(ctx, balance)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return saved, nil
}

// validateSubmission runs the full pre-write check chain: hire date, balance,
// conflicts, working hours. Every failure maps to a domain sentinel carrying
// the human-readable detail.
func (s *LeaveService) validateSubmission(ctx context.Context, request leave.LeaveRequest) error {
	emp, err := s.employeeRepo.GetByUserID(ctx, request.UserID)
	if err != nil {
		return err
	}

	from, to := request.Range()

	// Hire-date rule comes first, independent of balance or conflict state.
	if from.Before(emp.HireDate) {
		return fmt.Errorf("%w (hired %s)", leave.ErrBeforeHireDate, emp.HireDate.Format("2006-01-02"))
	}

	balance, err := s.balanceRepo.GetByUserYear(ctx, request.UserID, from.Year())
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to load leave balance: %w", err)
	}

	if check := CheckBalance(request, &balance); !check.OK() {
		return fmt.Errorf("%w: %s", leave.ErrInsufficientBalance, check.ErrorMessage)
	}

	sources, err := s.loadConflictSources(ctx, request.UserID, from, to)
	if err != nil {
		return err
	}

	if res := CheckConflicts(request, sources); !res.IsValid {
		return fmt.Errorf("%w: %s", leave.ErrDateConflict, strings.Join(res.Conflicts, "; "))
	}

	if request.Type == leave.TypePermesso {
		ws, err := s.scheduleRepo.Get(ctx)
		if err != nil {
			if errors.Is(err, domainSchedule.ErrScheduleNotFound) {
				// No schedule configured: nothing to check against.
				return nil
			}
			return fmt.Errorf("failed to load work schedule: %w", err)
		}

		hourErrs := scheduleService.CheckWorkingHours(*request.Day, *request.TimeFrom, *request.TimeTo, ws)
		if len(hourErrs) > 0 {
			return fmt.Errorf("%w: %s", leave.ErrOutsideWorkingHours, strings.Join(hourErrs, "; "))
		}
	}

	return nil
}

func (s *LeaveService) loadConflictSources(ctx context.Context, userID string, from, to time.Time) (ConflictSources, error) {
	leaves, err := s.requestRepo.ListApprovedInRange(ctx, userID, from, to)
	if err != nil {
		return ConflictSources{}, fmt.Errorf("failed to load approved leave: %w", err)
	}
	sick, err := s.sickRepo.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return ConflictSources{}, fmt.Errorf("failed to load sick leaves: %w", err)
	}
	trips, err := s.tripRepo.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return ConflictSources{}, fmt.Errorf("failed to load business trips: %w", err)
	}
	atts, err := s.unifiedRepo.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return ConflictSources{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	return ConflictSources{
		Leaves:        leaves,
		SickLeaves:    sick,
		BusinessTrips: trips,
		Attendances:   atts,
	}, nil
}

// applyApproval decrements the balance and materializes the attendance rows
// for an approved request. Must run inside a transaction: the balance row is
// locked and re-checked so the check-then-act window is closed.
func (s *LeaveService) applyApproval(txCtx context.Context, request leave.LeaveRequest) error {
	from, to := request.Range()

	balance, err := s.balanceRepo.GetByUserYearForUpdate(txCtx, request.UserID, from.Year())
	if err != nil {
		return err
	}
	if check := CheckBalance(request, &balance); !check.OK() {
		return fmt.Errorf("%w: %s", leave.ErrInsufficientBalance, check.ErrorMessage)
	}

	days, hours := usageCost(request)
	if err := s.balanceRepo.AddUsage(txCtx, request.UserID, from.Year(), days, hours); err != nil {
		return fmt.Errorf("failed to update leave balance usage: %w", err)
	}

	note := string(request.Type)
	if request.Type == leave.TypePermesso {
		note = fmt.Sprintf("permesso %s-%s", *request.TimeFrom, *request.TimeTo)
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		row := attendance.UnifiedAttendance{
			UserID:         request.UserID,
			Date:           d,
			LeaveRequestID: &request.ID,
			Notes:          &note,
			CreatedBy:      request.ReviewedBy,
		}
		if _, err := s.unifiedRepo.Create(txCtx, row); err != nil {
			return fmt.Errorf("failed to create attendance row for %s: %w", d.Format("2006-01-02"), err)
		}
	}

	return nil
}

// notifyDecision delivers the best-effort notification and folds the outcome
// into the result. Never fails the caller.
func (s *LeaveService) notifyDecision(ctx context.Context, request leave.LeaveRequest, notify bool) leave.ReviewResult {
	result := leave.ReviewResult{Request: request}

	if !notify || s.notifier == nil {
		return result
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, request.UserID)
	if err == nil {
		err = s.notifier.NotifyLeaveDecision(ctx, request, emp)
	}
	if err != nil {
		result.NotificationWarning = fmt.Sprintf("decision saved but notification failed: %v", err)
		return result
	}

	result.NotificationSent = true
	return result
}

func usageCost(request leave.LeaveRequest) (vacationDays, permissionHours float64) {
	switch request.Type {
	case leave.TypeFerie:
		return float64(request.DayCount()), 0
	case leave.TypePermesso:
		return 0, PermissionHours(request)
	}
	return 0, 0
}

func normalizeFilter(filter *leave.Filter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.SortOrder != "asc" {
		filter.SortOrder = "desc"
	}
}
