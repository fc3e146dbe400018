package response

import (
	"errors"
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/auth"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/document"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/notification"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/overtime"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/settings"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "OAuth provider not configured", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "No leave balance configured for this year")
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrBeforeHireDate),
		errors.Is(err, leave.ErrOutsideWorkingHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrDateConflict):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrDateConflict):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSickLeaveNotFound):
		NotFound(w, "Sick leave record not found")
	case errors.Is(err, attendance.ErrTripNotFound):
		NotFound(w, "Business trip record not found")

	// Schedule and settings
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not configured")
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not configured")

	// Notification domain errors
	case errors.Is(err, notification.ErrTemplateNotFound):
		NotFound(w, "Email template not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrAccessDenied):
		Forbidden(w, "No access to this document")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
