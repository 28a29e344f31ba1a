package overtime

import (
	"fmt"
	"time"
)

type Source string

const (
	SourceDetected Source = "detected"
	SourceManual   Source = "manual"
)

// Rule identifies which heuristic produced a detection.
type Rule string

const (
	RuleSentinelHandoff Rule = "sentinel_handoff"
	RuleMiddayWindow    Rule = "midday_window"
)

// Detection is the outcome of the rule engine for one employee-day.
type Detection struct {
	Start  time.Time
	End    time.Time
	Rule   Rule
	Detail string
}

// Record is a reportable overtime interval.
type Record struct {
	Date            string
	EmployeeID      int64
	Start           time.Time
	End             time.Time
	DurationMinutes int
	DurationLabel   string
	Source          Source
	Rule            Rule
	Detail          string
}

// FormatDuration renders minutes as "H:MM".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
