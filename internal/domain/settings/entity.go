package settings

import "time"

// Branding and customization singletons, one row each.

type AdminSettings struct {
	ID             string
	CompanyName    string
	PrimaryColor   string
	SecondaryColor string
	LogoPath       *string
	UpdatedAt      time.Time
}

type DashboardSettings struct {
	ID             string
	ShowAttendance bool
	ShowLeave      bool
	ShowOvertime   bool
	WelcomeMessage string
	UpdatedAt      time.Time
}

type LoginSettings struct {
	ID             string
	Title          string
	Subtitle       string
	BackgroundPath *string
	LogoPath       *string
	UpdatedAt      time.Time
}

type EmployeeLogoSettings struct {
	ID        string
	LogoPath  *string
	UpdatedAt time.Time
}
