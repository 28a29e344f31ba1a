package employee

import "time"

// Employee is one roster entry exported by the badge system.
type Employee struct {
	ID          int64
	BadgeNumber string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
