package overtime

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

// sentinelHandoff is Rule A: the first employee scan at or after the window
// start that directly follows a guard scan.
func sentinelHandoff(seq []checkin.CheckinEvent, cfg overtime.Config) (time.Time, bool) {
	for i := 1; i < len(seq); i++ {
		prev, cur := seq[i-1], seq[i]
		if !cfg.IsSentinel(prev.EmployeeID) || cfg.IsSentinel(cur.EmployeeID) {
			continue
		}
		if timestamp.MinuteOfDay(cur.Timestamp) >= cfg.WindowStart {
			return cur.Timestamp, true
		}
	}
	return time.Time{}, false
}

// middayWindow is Rule B: the second employee scan inside the closed window.
func middayWindow(seq []checkin.CheckinEvent, cfg overtime.Config) (time.Time, bool) {
	seen := 0
	for _, e := range seq {
		if cfg.IsSentinel(e.EmployeeID) || !cfg.InWindow(timestamp.MinuteOfDay(e.Timestamp)) {
			continue
		}
		seen++
		if seen == 2 {
			return e.Timestamp, true
		}
	}
	return time.Time{}, false
}

// Detect evaluates Rule A, then Rule B, on a cleaned and time-ordered day
// sequence. The interval ends at the last event of seq. ok is false when
// neither rule matches.
func Detect(seq []checkin.CheckinEvent, cfg overtime.Config) (overtime.Detection, bool) {
	if len(seq) == 0 {
		return overtime.Detection{}, false
	}

	var det overtime.Detection
	if start, ok := sentinelHandoff(seq, cfg); ok {
		det = overtime.Detection{
			Start:  start,
			Rule:   overtime.RuleSentinelHandoff,
			Detail: fmt.Sprintf("sentinel handoff at %s", start.Format(timestamp.ClockLayout)),
		}
	} else if start, ok := middayWindow(seq, cfg); ok {
		det = overtime.Detection{
			Start: start,
			Rule:  overtime.RuleMiddayWindow,
			Detail: fmt.Sprintf("second scan in window %s-%s at %s",
				timestamp.FormatClock(cfg.WindowStart),
				timestamp.FormatClock(cfg.WindowEnd),
				start.Format(timestamp.ClockLayout)),
		}
	} else {
		return overtime.Detection{}, false
	}

	det.End = seq[len(seq)-1].Timestamp
	if det.End.Before(det.Start) {
		det.End = det.Start
	}
	return det, true
}
