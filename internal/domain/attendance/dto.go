package attendance

import "github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"

type CreateAttendanceRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
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
	if r.CheckIn != nil {
		if _, ok := validator.IsValidClock(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be HH:MM",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClock(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be HH:MM",
			})
		}
	}
	if r.CheckIn != nil && r.CheckOut != nil {
		in, okIn := validator.IsValidClock(*r.CheckIn)
		out, okOut := validator.IsValidClock(*r.CheckOut)
		if okIn && okOut && out <= in {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be after check_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateRangeRequest covers sick leaves and business trips, both plain
// inclusive date ranges.
type CreateRangeRequest struct {
	UserID      string  `json:"user_id"`
	DateFrom    string  `json:"date_from"`
	DateTo      string  `json:"date_to"`
	Destination *string `json:"destination,omitempty"` // trips only
	Note        *string `json:"note,omitempty"`
}

func (r *CreateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	from, okFrom := validator.IsValidDate(r.DateFrom)
	to, okTo := validator.IsValidDate(r.DateTo)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from is required and must be YYYY-MM-DD",
		})
	}
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to is required and must be YYYY-MM-DD",
		})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
