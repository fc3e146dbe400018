package settings

import "context"

type Repository interface {
	GetAdmin(ctx context.Context) (AdminSettings, error)
	UpsertAdmin(ctx context.Context, s AdminSettings) (AdminSettings, error)

	GetDashboard(ctx context.Context) (DashboardSettings, error)
	UpsertDashboard(ctx context.Context, s DashboardSettings) (DashboardSettings, error)

	GetLogin(ctx context.Context) (LoginSettings, error)
	UpsertLogin(ctx context.Context, s LoginSettings) (LoginSettings, error)

	GetEmployeeLogo(ctx context.Context) (EmployeeLogoSettings, error)
	UpsertEmployeeLogo(ctx context.Context, s EmployeeLogoSettings) (EmployeeLogoSettings, error)
}
