package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/settings"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Branding singletons share the fixed-id upsert pattern: each table holds a
// single row that Get reads and Upsert inserts-or-replaces.

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

const singletonID = "00000000-0000-0000-0000-000000000001"

// GetAdmin implements settings.Repository.
func (r *settingsRepositoryImpl) GetAdmin(ctx context.Context) (settings.AdminSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, primary_color, secondary_color, logo_path, updated_at
		FROM admin_settings
		LIMIT 1
	`

	var s settings.AdminSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.PrimaryColor, &s.SecondaryColor, &s.LogoPath, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.AdminSettings{}, settings.ErrSettingsNotFound
		}
		return settings.AdminSettings{}, fmt.Errorf("failed to get admin settings: %w", err)
	}

	return s, nil
}

// UpsertAdmin implements settings.Repository.
func (r *settingsRepositoryImpl) UpsertAdmin(ctx context.Context, in settings.AdminSettings) (settings.AdminSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin_settings (id, company_name, primary_color, secondary_color, logo_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET company_name = EXCLUDED.company_name,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
		RETURNING id, company_name, primary_color, secondary_color, logo_path, updated_at
	`

	var s settings.AdminSettings
	err := q.QueryRow(ctx, query, singletonID,
		in.CompanyName, in.PrimaryColor, in.SecondaryColor, in.LogoPath,
	).Scan(
		&s.ID, &s.CompanyName, &s.PrimaryColor, &s.SecondaryColor, &s.LogoPath, &s.UpdatedAt,
	)

	if err != nil {
		return settings.AdminSettings{}, fmt.Errorf("failed to upsert admin settings: %w", err)
	}

	return s, nil
}

// GetDashboard implements settings.Repository.
func (r *settingsRepositoryImpl) GetDashboard(ctx context.Context) (settings.DashboardSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, show_attendance, show_leave, show_overtime, welcome_message, updated_at
		FROM dashboard_settings
		LIMIT 1
	`

	var s settings.DashboardSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.ShowAttendance, &s.ShowLeave, &s.ShowOvertime, &s.WelcomeMessage, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.DashboardSettings{}, settings.ErrSettingsNotFound
		}
		return settings.DashboardSettings{}, fmt.Errorf("failed to get dashboard settings: %w", err)
	}

	return s, nil
}

// UpsertDashboard implements settings.Repository.
func (r *settingsRepositoryImpl) UpsertDashboard(ctx context.Context, in settings.DashboardSettings) (settings.DashboardSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dashboard_settings (id, show_attendance, show_leave, show_overtime, welcome_message, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET show_attendance = EXCLUDED.show_attendance,
			show_leave = EXCLUDED.show_leave,
			show_overtime = EXCLUDED.show_overtime,
			welcome_message = EXCLUDED.welcome_message,
			updated_at = NOW()
		RETURNING id, show_attendance, show_leave, show_overtime, welcome_message, updated_at
	`

	var s settings.DashboardSettings
	err := q.QueryRow(ctx, query, singletonID,
		in.ShowAttendance, in.ShowLeave, in.ShowOvertime, in.WelcomeMessage,
	).Scan(
		&s.ID, &s.ShowAttendance, &s.ShowLeave, &s.ShowOvertime, &s.WelcomeMessage, &s.UpdatedAt,
	)

	if err != nil {
		return settings.DashboardSettings{}, fmt.Errorf("failed to upsert dashboard settings: %w", err)
	}

	return s, nil
}

// GetLogin implements settings.Repository.
func (r *settingsRepositoryImpl) GetLogin(ctx context.Context) (settings.LoginSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, subtitle, background_path, logo_path, updated_at
		FROM login_settings
		LIMIT 1
	`

	var s settings.LoginSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.BackgroundPath, &s.LogoPath, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.LoginSettings{}, settings.ErrSettingsNotFound
		}
		return settings.LoginSettings{}, fmt.Errorf("failed to get login settings: %w", err)
	}

	return s, nil
}

// UpsertLogin implements settings.Repository.
func (r *settingsRepositoryImpl) UpsertLogin(ctx context.Context, in settings.LoginSettings) (settings.LoginSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO login_settings (id, title, subtitle, background_path, logo_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			background_path = EXCLUDED.background_path,
			logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
		RETURNING id, title, subtitle, background_path, logo_path, updated_at
	`

	var s settings.LoginSettings
	err := q.QueryRow(ctx, query, singletonID,
		in.Title, in.Subtitle, in.BackgroundPath, in.LogoPath,
	).Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.BackgroundPath, &s.LogoPath, &s.UpdatedAt,
	)

	if err != nil {
		return settings.LoginSettings{}, fmt.Errorf("failed to upsert login settings: %w", err)
	}

	return s, nil
}

// GetEmployeeLogo implements settings.Repository.
func (r *settingsRepositoryImpl) GetEmployeeLogo(ctx context.Context) (settings.EmployeeLogoSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, logo_path, updated_at
		FROM employee_logo_settings
		LIMIT 1
	`

	var s settings.EmployeeLogoSettings
	err := q.QueryRow(ctx, query).Scan(&s.ID, &s.LogoPath, &s.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.EmployeeLogoSettings{}, settings.ErrSettingsNotFound
		}
		return settings.EmployeeLogoSettings{}, fmt.Errorf("failed to get employee logo settings: %w", err)
	}

	return s, nil
}

// UpsertEmployeeLogo implements settings.Repository.
func (r *settingsRepositoryImpl) UpsertEmployeeLogo(ctx context.Context, in settings.EmployeeLogoSettings) (settings.EmployeeLogoSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_logo_settings (id, logo_path, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
		RETURNING id, logo_path, updated_at
	`

	var s settings.EmployeeLogoSettings
	err := q.QueryRow(ctx, query, singletonID, in.LogoPath).
		Scan(&s.ID, &s.LogoPath, &s.UpdatedAt)

	if err != nil {
		return settings.EmployeeLogoSettings{}, fmt.Errorf("failed to upsert employee logo settings: %w", err)
	}

	return s, nil
}
