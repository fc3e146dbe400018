package employee

import (
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	HireDate  string `json:"hire_date"`
	IsAdmin   bool   `json:"is_admin"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FirstName) && validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "a name is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID        string     `json:"-"`
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	HireDate  *time.Time `json:"-"`
	HireDateS *string    `json:"hire_date,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.HireDateS != nil {
		d, ok := validator.IsValidDate(*r.HireDateS)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		} else {
			r.HireDate = &d
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	Name     *string
	IsActive *bool
	Page     int
	Limit    int
}
