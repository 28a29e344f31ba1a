package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

// Assemble joins roster identity onto detected records, keeps only records and
// manual entries of the month and computes per-employee totals. Detected and
// manual rows stay in separate lists. Unknown employees get empty identity fields.
func Assemble(
	month timestamp.Month,
	records []overtime.Record,
	entries []manualentry.ManualEntry,
	roster []employee.Employee,
	generatedAt time.Time,
) report.MonthlyReport {
	byID := make(map[int64]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}

	summaries := make(map[int64]*report.EmployeeSummary)
	summaryFor := func(id int64) *report.EmployeeSummary {
		if s, ok := summaries[id]; ok {
			return s
		}
		emp := byID[id]
		s := &report.EmployeeSummary{
			EmployeeID:    id,
			BadgeNumber:   emp.BadgeNumber,
			Name:          emp.Name,
			ManualMinutes: map[string]int{},
		}
		summaries[id] = s
		return s
	}

	detected := make([]report.OvertimeRecordResponse, 0, len(records))
	for _, rec := range records {
		if !month.Contains(rec.Start) {
			continue
		}
		emp := byID[rec.EmployeeID]
		detected = append(detected, report.OvertimeRecordResponse{
			Date:            rec.Date,
			EmployeeID:      rec.EmployeeID,
			BadgeNumber:     emp.BadgeNumber,
			Name:            emp.Name,
			Start:           timestamp.Format(rec.Start),
			End:             timestamp.Format(rec.End),
			DurationMinutes: rec.DurationMinutes,
			DurationLabel:   overtime.FormatDuration(rec.DurationMinutes),
			Source:          string(overtime.SourceDetected),
			Rule:            string(rec.Rule),
			Detail:          rec.Detail,
		})

		s := summaryFor(rec.EmployeeID)
		s.DetectedDays++
		s.DetectedMinutes += rec.DurationMinutes
	}

	manual := make([]manualentry.ManualEntry, 0, len(entries))
	for _, e := range entries {
		if !month.Contains(e.Start) {
			continue
		}
		manual = append(manual, e)
		summaryFor(e.EmployeeID).ManualMinutes[e.Type] += e.DurationMinutes
	}

	summary := make([]report.EmployeeSummary, 0, len(summaries))
	for _, s := range summaries {
		s.DetectedLabel = overtime.FormatDuration(s.DetectedMinutes)
		summary = append(summary, *s)
	}
	slices.SortFunc(summary, func(a, b report.EmployeeSummary) int {
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})

	return report.MonthlyReport{
		Month:            month.String(),
		PeriodStart:      timestamp.DateKey(month.Start()),
		PeriodEnd:        timestamp.DateKey(month.End().AddDate(0, 0, -1)),
		GeneratedAt:      generatedAt.Format(time.RFC3339),
		Employees:        employee.ToResponses(roster),
		DetectedOvertime: detected,
		ManualEntries:    manualentry.ToResponses(manual),
		Summary:          summary,
	}
}
