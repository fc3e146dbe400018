package leave

import "time"

// LeaveType discriminates the two request shapes: ferie is a multi-day
// vacation carrying DateFrom..DateTo, permesso is a single-day permission
// carrying Day plus a TimeFrom..TimeTo window. A request never carries both.
type LeaveType string

const (
	TypeFerie    LeaveType = "ferie"
	TypePermesso LeaveType = "permesso"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID     string
	UserID string
	Type   LeaveType

	// Ferie only
	DateFrom *time.Time
	DateTo   *time.Time

	// Permesso only
	Day      *time.Time
	TimeFrom *string // "HH:MM"
	TimeTo   *string // "HH:MM"

	Note           *string
	AdminNote      *string
	Status         Status
	NotifyEmployee bool

	ReviewedBy *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

// Range returns the inclusive date range covered by the request,
// regardless of type.
func (r LeaveRequest) Range() (time.Time, time.Time) {
	if r.Type == TypePermesso {
		if r.Day != nil {
			return *r.Day, *r.Day
		}
		return time.Time{}, time.Time{}
	}
	var from, to time.Time
	if r.DateFrom != nil {
		from = *r.DateFrom
	}
	to = from
	if r.DateTo != nil {
		to = *r.DateTo
	}
	return from, to
}

// DayCount returns the inclusive number of calendar days the request spans.
func (r LeaveRequest) DayCount() int {
	from, to := r.Range()
	if from.IsZero() || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// LeaveBalance is the per-employee, per-year allotment and consumption.
// used <= total is enforced at validation/approval time only; the table
// itself carries no constraint, matching the original schema.
type LeaveBalance struct {
	ID     string
	UserID string
	Year   int

	VacationDaysTotal    float64
	VacationDaysUsed     float64
	PermissionHoursTotal float64
	PermissionHoursUsed  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b LeaveBalance) RemainingVacationDays() float64 {
	return b.VacationDaysTotal - b.VacationDaysUsed
}

func (b LeaveBalance) RemainingPermissionHours() float64 {
	return b.PermissionHoursTotal - b.PermissionHoursUsed
}
