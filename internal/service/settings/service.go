package settings

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/settings"
)

type SettingsService struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) settings.Service {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) GetAdmin(ctx context.Context) (settings.AdminSettings, error) {
	return s.repo.GetAdmin(ctx)
}

func (s *SettingsService) UpsertAdmin(ctx context.Context, req settings.UpsertAdminSettingsRequest) (settings.AdminSettings, error) {
	saved, err := s.repo.UpsertAdmin(ctx, settings.AdminSettings{
		CompanyName:    req.CompanyName,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoPath:       req.LogoPath,
	})
	if err != nil {
		return settings.AdminSettings{}, fmt.Errorf("failed to save admin settings: %w", err)
	}
	return saved, nil
}

func (s *SettingsService) GetDashboard(ctx context.Context) (settings.DashboardSettings, error) {
	return s.repo.GetDashboard(ctx)
}

func (s *SettingsService) UpsertDashboard(ctx context.Context, req settings.UpsertDashboardSettingsRequest) (settings.DashboardSettings, error) {
	saved, err := s.repo.UpsertDashboard(ctx, settings.DashboardSettings{
		ShowAttendance: req.ShowAttendance,
		ShowLeave:      req.ShowLeave,
		ShowOvertime:   req.ShowOvertime,
		WelcomeMessage: req.WelcomeMessage,
	})
	if err != nil {
		return settings.DashboardSettings{}, fmt.Errorf("failed to save dashboard settings: %w", err)
	}
	return saved, nil
}

func (s *SettingsService) GetLogin(ctx context.Context) (settings.LoginSettings, error) {
	return s.repo.GetLogin(ctx)
}

func (s *SettingsService) UpsertLogin(ctx context.Context, req settings.UpsertLoginSettingsRequest) (settings.LoginSettings, error) {
	saved, err := s.repo.UpsertLogin(ctx, settings.LoginSettings{
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		BackgroundPath: req.BackgroundPath,
		LogoPath:       req.LogoPath,
	})
	if err != nil {
		return settings.LoginSettings{}, fmt.Errorf("failed to save login settings: %w", err)
	}
	return saved, nil
}

func (s *SettingsService) GetEmployeeLogo(ctx context.Context) (settings.EmployeeLogoSettings, error) {
	return s.repo.GetEmployeeLogo(ctx)
}

func (s *SettingsService) UpsertEmployeeLogo(ctx context.Context, req settings.UpsertEmployeeLogoRequest) (settings.EmployeeLogoSettings, error) {
	saved, err := s.repo.UpsertEmployeeLogo(ctx, settings.EmployeeLogoSettings{
		LogoPath: req.LogoPath,
	})
	if err != nil {
		return settings.EmployeeLogoSettings{}, fmt.Errorf("failed to save employee logo settings: %w", err)
	}
	return saved, nil
}
