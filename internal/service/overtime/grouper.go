package overtime

import (
	"cmp"
	"slices"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

// DayKey identifies one employee on one local calendar day.
type DayKey struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
}

// GroupByDay partitions events by employee and local date. Each sequence is
// sorted by timestamp; equal timestamps keep their input order. The input
// slice is not modified.
func GroupByDay(events []checkin.CheckinEvent) map[DayKey][]checkin.CheckinEvent {
	groups := make(map[DayKey][]checkin.CheckinEvent)
	for _, e := range events {
		key := DayKey{EmployeeID: e.EmployeeID, Date: timestamp.DateKey(e.Timestamp)}
		groups[key] = append(groups[key], e)
	}

	for key, seq := range groups {
		slices.SortStableFunc(seq, func(a, b checkin.CheckinEvent) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
		groups[key] = seq
	}
	return groups
}

// SortedKeys returns the group keys ordered by date, then employee ID.
func SortedKeys(groups map[DayKey][]checkin.CheckinEvent) []DayKey {
	keys := make([]DayKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b DayKey) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})
	return keys
}

// mergeSentinel interleaves the guard's scans of the same day into an
// employee's sequence. Both inputs must be time ordered. On equal timestamps
// the guard scan goes first.
func mergeSentinel(own, guard []checkin.CheckinEvent) []checkin.CheckinEvent {
	out := make([]checkin.CheckinEvent, 0, len(own)+len(guard))
	i, j := 0, 0
	for i < len(own) && j < len(guard) {
		if own[i].Timestamp.Before(guard[j].Timestamp) {
			out = append(out, own[i])
			i++
		} else {
			out = append(out, guard[j])
			j++
		}
	}
	out = append(out, own[i:]...)
	return append(out, guard[j:]...)
}
