package leave

import (
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest is an employee submission. Exactly one of the
// two shapes must be present: ferie -> date_from/date_to, permesso ->
// day/time_from/time_to.
type CreateLeaveRequestRequest struct {
	UserID   string  `json:"-"` // from JWT, never from the body
	Type     string  `json:"type"`
	DateFrom string  `json:"date_from,omitempty"`
	DateTo   string  `json:"date_to,omitempty"`
	Day      string  `json:"day,omitempty"`
	TimeFrom string  `json:"time_from,omitempty"`
	TimeTo   string  `json:"time_to,omitempty"`
	Note     *string `json:"note,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	errs := validateShape(r.Type, r.DateFrom, r.DateTo, r.Day, r.TimeFrom, r.TimeTo)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts the validated request into a LeaveRequest. Must only be
// called after Validate.
func (r *CreateLeaveRequestRequest) ToEntity() LeaveRequest {
	req := LeaveRequest{
		UserID: r.UserID,
		Type:   LeaveType(r.Type),
		Note:   r.Note,
		Status: StatusPending,
	}

	switch req.Type {
	case TypeFerie:
		from, _ := validator.IsValidDate(r.DateFrom)
		to, _ := validator.IsValidDate(r.DateTo)
		req.DateFrom = &from
		req.DateTo = &to
	case TypePermesso:
		day, _ := validator.IsValidDate(r.Day)
		tf, tt := r.TimeFrom, r.TimeTo
		req.Day = &day
		req.TimeFrom = &tf
		req.TimeTo = &tt
	}

	return req
}

// ManualLeaveEntryRequest is an admin-created record, stored directly in
// approved state but still subject to every submission check.
type ManualLeaveEntryRequest struct {
	UserID    string  `json:"user_id"`
	Type      string  `json:"type"`
	DateFrom  string  `json:"date_from,omitempty"`
	DateTo    string  `json:"date_to,omitempty"`
	Day       string  `json:"day,omitempty"`
	TimeFrom  string  `json:"time_from,omitempty"`
	TimeTo    string  `json:"time_to,omitempty"`
	Note      *string `json:"note,omitempty"`
	AdminNote *string `json:"admin_note,omitempty"`
	CreatedBy string  `json:"-"` // from JWT
}

func (r *ManualLeaveEntryRequest) Validate() error {
	errs := validateShape(r.Type, r.DateFrom, r.DateTo, r.Day, r.TimeFrom, r.TimeTo)

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ManualLeaveEntryRequest) ToEntity() LeaveRequest {
	create := CreateLeaveRequestRequest{
		UserID:   r.UserID,
		Type:     r.Type,
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		Day:      r.Day,
		TimeFrom: r.TimeFrom,
		TimeTo:   r.TimeTo,
		Note:     r.Note,
	}
	req := create.ToEntity()
	req.Status = StatusApproved
	req.AdminNote = r.AdminNote
	return req
}

// validateShape enforces the ferie/permesso exclusivity invariant.
func validateShape(typ, dateFrom, dateTo, day, timeFrom, timeTo string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(typ, []string{string(TypeFerie), string(TypePermesso)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'ferie' or 'permesso'",
		})
		return errs
	}

	switch LeaveType(typ) {
	case TypeFerie:
		from, okFrom := validator.IsValidDate(dateFrom)
		to, okTo := validator.IsValidDate(dateTo)
		if !okFrom {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from is required for ferie and must be YYYY-MM-DD",
			})
		}
		if !okTo {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to is required for ferie and must be YYYY-MM-DD",
			})
		}
		if okFrom && okTo && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must not be before date_from",
			})
		}
		if day != "" || timeFrom != "" || timeTo != "" {
			errs = append(errs, validator.ValidationError{
				Field:   "day",
				Message: "ferie must not carry day or time fields",
			})
		}

	case TypePermesso:
		if _, ok := validator.IsValidDate(day); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "day",
				Message: "day is required for permesso and must be YYYY-MM-DD",
			})
		}
		from, okFrom := validator.IsValidClock(timeFrom)
		to, okTo := validator.IsValidClock(timeTo)
		if !okFrom {
			errs = append(errs, validator.ValidationError{
				Field:   "time_from",
				Message: "time_from is required for permesso and must be HH:MM",
			})
		}
		if !okTo {
			errs = append(errs, validator.ValidationError{
				Field:   "time_to",
				Message: "time_to is required for permesso and must be HH:MM",
			})
		}
		if okFrom && okTo && to <= from {
			errs = append(errs, validator.ValidationError{
				Field:   "time_to",
				Message: "time_to must be after time_from",
			})
		}
		if dateFrom != "" || dateTo != "" {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "permesso must not carry date_from/date_to",
			})
		}
	}

	return errs
}

// ReviewRequest carries an approve/reject decision.
type ReviewRequest struct {
	RequestID      string  `json:"request_id"`
	AdminNote      *string `json:"admin_note,omitempty"`
	NotifyEmployee bool    `json:"notify_employee"`
	ReviewerID     string  `json:"-"` // from JWT
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetBalanceRequest creates or replaces an employee's yearly allotment.
type SetBalanceRequest struct {
	UserID               string  `json:"user_id"`
	Year                 int     `json:"year"`
	VacationDaysTotal    float64 `json:"vacation_days_total"`
	PermissionHoursTotal float64 `json:"permission_hours_total"`
}

func (r *SetBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.VacationDaysTotal < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days_total",
			Message: "vacation_days_total must not be negative",
		})
	}
	if r.PermissionHoursTotal < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "permission_hours_total",
			Message: "permission_hours_total must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter for admin listings.
type Filter struct {
	UserID    *string
	Type      *string
	Status    *string
	DateFrom  *string
	DateTo    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type ListResponse struct {
	Requests []LeaveRequest `json:"requests"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
}

// ReviewResult reports the state transition plus the best-effort
// notification outcome; a failed notification never rolls back the decision.
type ReviewResult struct {
	Request             LeaveRequest `json:"request"`
	NotificationSent    bool         `json:"notification_sent"`
	NotificationWarning string       `json:"notification_warning,omitempty"`
}

// UpdateStatusRequest is the repository-level status transition payload.
type UpdateStatusRequest struct {
	ID         string
	Status     Status
	AdminNote  *string
	ReviewedBy string
	ReviewedAt time.Time
}
