package overtime

import "time"

// OvertimeRecord is a single-date entry; hours are whole hours, 1-24.
type OvertimeRecord struct {
	ID        string
	UserID    string
	Date      time.Time
	Hours     int
	Notes     *string
	CreatedBy string

	CreatedAt time.Time

	// Joined for responses
	EmployeeName *string
}
