package overtime

import (
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
)

type Detector struct {
	cfg overtime.Config
}

func NewDetector(cfg overtime.Config) overtime.Detector {
	return &Detector{cfg: cfg}
}

// DetectDay runs the noise filter and the rule engine on one time-ordered day.
func (d *Detector) DetectDay(seq []checkin.CheckinEvent) (overtime.Detection, bool) {
	return Detect(FilterNoise(seq, d.cfg.SentinelID), d.cfg)
}

// DetectMonth implements overtime.Detector. Records are ordered by date then
// employee ID and carry no identity fields.
func (d *Detector) DetectMonth(events []checkin.CheckinEvent) []overtime.Record {
	groups := GroupByDay(events)
	records := make([]overtime.Record, 0)

	for _, key := range SortedKeys(groups) {
		if d.cfg.IsSentinel(key.EmployeeID) {
			continue
		}

		seq := groups[key]
		if guard, ok := groups[DayKey{EmployeeID: d.cfg.SentinelID, Date: key.Date}]; ok {
			seq = mergeSentinel(seq, guard)
		}

		det, ok := d.DetectDay(seq)
		if !ok {
			continue
		}

		minutes := d.cfg.Rounding.Minutes(det.End.Sub(det.Start))
		records = append(records, overtime.Record{
			Date:            key.Date,
			EmployeeID:      key.EmployeeID,
			Start:           det.Start,
			End:             det.End,
			DurationMinutes: minutes,
			DurationLabel:   overtime.FormatDuration(minutes),
			Source:          overtime.SourceDetected,
			Rule:            det.Rule,
			Detail:          det.Detail,
		})
	}
	return records
}
