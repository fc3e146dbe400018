package schedule

import "time"

// WorkSchedule is the single company-wide working-hours configuration.
type WorkSchedule struct {
	ID               string
	StartTime        string // "HH:MM"
	EndTime          string // "HH:MM"
	Monday           bool
	Tuesday          bool
	Wednesday        bool
	Thursday         bool
	Friday           bool
	Saturday         bool
	Sunday           bool
	ToleranceMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsWeekday reports whether the given weekday is a working day.
func (ws WorkSchedule) AllowsWeekday(d time.Weekday) bool {
	switch d {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	case time.Sunday:
		return ws.Sunday
	}
	return false
}
