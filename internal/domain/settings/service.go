package settings

import "context"

type Service interface {
	GetAdmin(ctx context.Context) (AdminSettings, error)
	UpsertAdmin(ctx context.Context, req UpsertAdminSettingsRequest) (AdminSettings, error)

	GetDashboard(ctx context.Context) (DashboardSettings, error)
	UpsertDashboard(ctx context.Context, req UpsertDashboardSettingsRequest) (DashboardSettings, error)

	GetLogin(ctx context.Context) (LoginSettings, error)
	UpsertLogin(ctx context.Context, req UpsertLoginSettingsRequest) (LoginSettings, error)

	GetEmployeeLogo(ctx context.Context) (EmployeeLogoSettings, error)
	UpsertEmployeeLogo(ctx context.Context, req UpsertEmployeeLogoRequest) (EmployeeLogoSettings, error)
}
