package schedule

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
)

type ScheduleService struct {
	repo schedule.Repository
}

func NewScheduleService(repo schedule.Repository) schedule.Service {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) Get(ctx context.Context) (schedule.WorkSchedule, error) {
	return s.repo.Get(ctx)
}

func (s *ScheduleService) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.WorkSchedule, error) {
	saved, err := s.repo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to save work schedule: %w", err)
	}
	return saved, nil
}
