package settings

import "github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"

type UpsertAdminSettingsRequest struct {
	CompanyName    string  `json:"company_name"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	LogoPath       *string `json:"logo_path,omitempty"`
}

func (r *UpsertAdminSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertDashboardSettingsRequest struct {
	ShowAttendance bool   `json:"show_attendance"`
	ShowLeave      bool   `json:"show_leave"`
	ShowOvertime   bool   `json:"show_overtime"`
	WelcomeMessage string `json:"welcome_message"`
}

type UpsertLoginSettingsRequest struct {
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	BackgroundPath *string `json:"background_path,omitempty"`
	LogoPath       *string `json:"logo_path,omitempty"`
}

type UpsertEmployeeLogoRequest struct {
	LogoPath *string `json:"logo_path,omitempty"`
}
