package overtime

import "github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"

// FilterNoise drops sentinel scans that directly follow another sentinel scan,
// keeping the first of each consecutive run. Isolated sentinel scans stay
// because Rule A depends on their position.
func FilterNoise(seq []checkin.CheckinEvent, sentinelID int64) []checkin.CheckinEvent {
	out := make([]checkin.CheckinEvent, 0, len(seq))
	for i, e := range seq {
		if e.EmployeeID == sentinelID && i > 0 && seq[i-1].EmployeeID == sentinelID {
			continue
		}
		out = append(out, e)
	}
	return out
}
