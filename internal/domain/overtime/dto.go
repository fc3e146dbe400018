package overtime

import "github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"

type CreateOvertimeRequest struct {
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Hours     int     `json:"hours"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"-"` // from JWT
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required and must be YYYY-MM-DD",
		})
	}
	if r.Hours < 1 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	UserID *string
	Year   *int
	Month  *int
	Page   int
	Limit  int
}

type ListResponse struct {
	Records []OvertimeRecord `json:"records"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// DisabledDatesResponse lists the days of a month a client should grey out
// in the overtime date picker.
type DisabledDatesResponse struct {
	UserID string   `json:"user_id"`
	Year   int      `json:"year"`
	Month  int      `json:"month"`
	Dates  []string `json:"dates"`
}
