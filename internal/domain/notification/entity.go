package notification

import "time"

// Template types a decision can trigger.
const (
	TemplateLeaveApproved = "leave_approved"
	TemplateLeaveRejected = "leave_rejected"
)

// EmailTemplate is an admin-editable template. Subject and body are
// html/template sources; the renderer exposes .EmployeeName, .Type,
// .Period, .AdminNote.
type EmailTemplate struct {
	ID      string
	Type    string
	Subject string
	Body    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notification is an in-app notification row for an employee.
type Notification struct {
	ID      string
	UserID  string
	Title   string
	Message string
	IsRead  bool

	CreatedAt time.Time
}
