package manualentry

import "time"

const (
	TypeOvertime = "overtime"
	TypeLeave    = "leave"
)

// ManualEntry is a hand-entered time adjustment. It is never derived from badge data.
type ManualEntry struct {
	ID              int64
	EmployeeID      int64
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Type            string
	Note            *string
	CreatedAt       time.Time
}
