package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
	"github.com/gestionale-hr/hr-backend-go/internal/repository/postgresql"
)

type AttendanceService struct {
	tx             postgresql.Transactor
	attendanceRepo attendance.AttendanceRepository
	unifiedRepo    attendance.UnifiedAttendanceRepository
	sickRepo       attendance.SickLeaveRepository
	tripRepo       attendance.BusinessTripRepository
}

func NewAttendanceService(
	tx postgresql.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	unifiedRepo attendance.UnifiedAttendanceRepository,
	sickRepo attendance.SickLeaveRepository,
	tripRepo attendance.BusinessTripRepository,
) attendance.Service {
	return &AttendanceService{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		unifiedRepo:    unifiedRepo,
		sickRepo:       sickRepo,
		tripRepo:       tripRepo,
	}
}

// CreateAttendance stores the record and mirrors it into the unified
// calendar so conflict checks see it. Record and mirror are written in one
// transaction; a failed mirror never leaves a record the calendar cannot see.
func (s *AttendanceService) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	date, _ := validator.IsValidDate(req.Date)

	record := attendance.Attendance{
		UserID:   req.UserID,
		Date:     date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Notes:    req.Notes,
	}

	var created attendance.Attendance
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.attendanceRepo.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}

		unified := attendance.UnifiedAttendance{
			UserID:       req.UserID,
			Date:         date,
			CheckIn:      req.CheckIn,
			CheckOut:     req.CheckOut,
			AttendanceID: &created.ID,
			Notes:        req.Notes,
		}
		if _, err := s.unifiedRepo.Create(txCtx, unified); err != nil {
			return fmt.Errorf("failed to mirror attendance record: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

func (s *AttendanceService) ListAttendance(ctx context.Context, userID string, from, to *time.Time) ([]attendance.Attendance, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// DeleteAttendance removes the record together with its unified mirror row,
// in one transaction. An orphaned mirror would keep blocking leave and
// overtime for that day.
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.Delete(txCtx, id); err != nil {
			return err
		}
		if err := s.unifiedRepo.DeleteByAttendanceID(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete attendance mirror: %w", err)
		}
		return nil
	})
}

func (s *AttendanceService) ListUnified(ctx context.Context, userID string, from, to *time.Time) ([]attendance.UnifiedAttendance, error) {
	records, err := s.unifiedRepo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list unified attendance: %w", err)
	}
	return records, nil
}

func (s *AttendanceService) CreateSickLeave(ctx context.Context, req attendance.CreateRangeRequest) (attendance.SickLeave, error) {
	from, _ := validator.IsValidDate(req.DateFrom)
	to, _ := validator.IsValidDate(req.DateTo)

	record := attendance.SickLeave{
		UserID:   req.UserID,
		DateFrom: from,
		DateTo:   to,
		Note:     req.Note,
	}

	created, err := s.sickRepo.Create(ctx, record)
	if err != nil {
		return attendance.SickLeave{}, fmt.Errorf("failed to create sick leave: %w", err)
	}

	return created, nil
}

func (s *AttendanceService) ListSickLeaves(ctx context.Context, userID string) ([]attendance.SickLeave, error) {
	records, err := s.sickRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sick leaves: %w", err)
	}
	return records, nil
}

func (s *AttendanceService) DeleteSickLeave(ctx context.Context, id string) error {
	return s.sickRepo.Delete(ctx, id)
}

func (s *AttendanceService) CreateBusinessTrip(ctx context.Context, req attendance.CreateRangeRequest) (attendance.BusinessTrip, error) {
	from, _ := validator.IsValidDate(req.DateFrom)
	to, _ := validator.IsValidDate(req.DateTo)

	record := attendance.BusinessTrip{
		UserID:      req.UserID,
		DateFrom:    from,
		DateTo:      to,
		Destination: req.Destination,
		Note:        req.Note,
	}

	created, err := s.tripRepo.Create(ctx, record)
	if err != nil {
		return attendance.BusinessTrip{}, fmt.Errorf("failed to create business trip: %w", err)
	}

	return created, nil
}

func (s *AttendanceService) ListBusinessTrips(ctx context.Context, userID string) ([]attendance.BusinessTrip, error) {
	records, err := s.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business trips: %w", err)
	}
	return records, nil
}

func (s *AttendanceService) DeleteBusinessTrip(ctx context.Context, id string) error {
	return s.tripRepo.Delete(ctx, id)
}
