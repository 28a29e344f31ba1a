package overtime

import "github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"

// Detector derives overtime records from a month of check-in events.
type Detector interface {
	DetectMonth(events []checkin.CheckinEvent) []Record
}
