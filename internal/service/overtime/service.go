package overtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/overtime"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

type OvertimeService struct {
	repo        overtime.Repository
	leaveRepo   leave.LeaveRequestRepository
	sickRepo    attendance.SickLeaveRepository
	tripRepo    attendance.BusinessTripRepository
	unifiedRepo attendance.UnifiedAttendanceRepository
}

func NewOvertimeService(
	repo overtime.Repository,
	leaveRepo leave.LeaveRequestRepository,
	sickRepo attendance.SickLeaveRepository,
	tripRepo attendance.BusinessTripRepository,
	unifiedRepo attendance.UnifiedAttendanceRepository,
) overtime.Service {
	return &OvertimeService{
		repo:        repo,
		leaveRepo:   leaveRepo,
		sickRepo:    sickRepo,
		tripRepo:    tripRepo,
		unifiedRepo: unifiedRepo,
	}
}

// Create records overtime for a single date after checking the date is free
// of absence records and of a prior overtime entry.
func (s *OvertimeService) Create(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeRecord, error) {
	date, _ := validator.IsValidDate(req.Date)

	exists, err := s.repo.ExistsOnDate(ctx, req.UserID, date)
	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to check existing overtime: %w", err)
	}
	if exists {
		return overtime.OvertimeRecord{}, fmt.Errorf(
			"%w: overtime already recorded on %s", overtime.ErrDateConflict, req.Date)
	}

	src, err := s.loadConflictSources(ctx, req.UserID, date, date)
	if err != nil {
		return overtime.OvertimeRecord{}, err
	}
	if res := CheckDate(date, src); !res.IsValid {
		return overtime.OvertimeRecord{}, fmt.Errorf(
			"%w: %s", overtime.ErrDateConflict, strings.Join(res.Conflicts, "; "))
	}

	record := overtime.OvertimeRecord{
		UserID:    req.UserID,
		Date:      date,
		Hours:     req.Hours,
		Notes:     req.Notes,
		CreatedBy: req.CreatedBy,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return created, nil
}

func (s *OvertimeService) List(ctx context.Context, filter overtime.Filter) (overtime.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return overtime.ListResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}

	return overtime.ListResponse{
		Records: records,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (s *OvertimeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}
	return nil
}

// DisabledDates returns the days of the month already covered by an absence,
// attendance or overtime entry, formatted YYYY-MM-DD for the date picker.
func (s *OvertimeService) DisabledDates(ctx context.Context, userID string, year, month int) (overtime.DisabledDatesResponse, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	src, err := s.loadConflictSources(ctx, userID, first, last)
	if err != nil {
		return overtime.DisabledDatesResponse{}, err
	}

	covered := CoveredDates(first, last, src)

	dates := make([]string, 0, len(covered))
	seen := make(map[string]bool, len(covered))
	for _, d := range covered {
		dates = append(dates, d.Format(dateLayout))
		seen[d.Format(dateLayout)] = true
	}

	records, _, err := s.repo.List(ctx, overtime.Filter{
		UserID: &userID,
		Year:   &year,
		Month:  &month,
		Page:   1,
		Limit:  31,
	})
	if err != nil {
		return overtime.DisabledDatesResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}
	for _, rec := range records {
		key := rec.Date.Format(dateLayout)
		if !seen[key] {
			dates = append(dates, key)
			seen[key] = true
		}
	}

	return overtime.DisabledDatesResponse{
		UserID: userID,
		Year:   year,
		Month:  month,
		Dates:  dates,
	}, nil
}

func (s *OvertimeService) loadConflictSources(ctx context.Context, userID string, from, to time.Time) (ConflictSources, error) {
	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, userID, from, to)
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
