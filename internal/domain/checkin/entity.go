package checkin

import "time"

// CheckinEvent is a single badge scan. Timestamp holds the local wall clock.
type CheckinEvent struct {
	EmployeeID int64
	Timestamp  time.Time
}
