package notification

import "github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"

var knownTemplateTypes = []string{TemplateLeaveApproved, TemplateLeaveRejected}

type UpsertTemplateRequest struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r *UpsertTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, knownTemplateTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of leave_approved, leave_rejected",
		})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveDecisionData feeds the approval/rejection templates.
type LeaveDecisionData struct {
	EmployeeName string
	Type         string
	Period       string
	AdminNote    string
}
