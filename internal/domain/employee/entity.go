package employee

import "time"

// Employee is the profile attached to a user account.
type Employee struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Email     string
	HireDate  time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
