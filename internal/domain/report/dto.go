package report

import (
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY OVERTIME REPORT
// ========================================

type MonthlyReportRequest struct {
	Month string `json:"month"` // YYYY-MM

	Period timestamp.Month `json:"-"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required (YYYY-MM)",
		})
	} else if m, err := timestamp.ParseMonth(r.Month); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	} else {
		r.Period = m
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	Month       string `json:"month"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees        []employee.EmployeeResponse       `json:"employees"`
	DetectedOvertime []OvertimeRecordResponse          `json:"detected_overtime"`
	ManualEntries    []manualentry.ManualEntryResponse `json:"manual_entries"`
	Summary          []EmployeeSummary                 `json:"summary"`
}

type OvertimeRecordResponse struct {
	Date            string `json:"date"`
	EmployeeID      int64  `json:"employee_id"`
	BadgeNumber     string `json:"badge_number"`
	Name            string `json:"name"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	DurationLabel   string `json:"duration_label"`
	Source          string `json:"source"`
	Rule            string `json:"rule"`
	Detail          string `json:"detail"`
}

type EmployeeSummary struct {
	EmployeeID      int64          `json:"employee_id"`
	BadgeNumber     string         `json:"badge_number"`
	Name            string         `json:"name"`
	DetectedDays    int            `json:"detected_days"`
	DetectedMinutes int            `json:"detected_minutes"`
	DetectedLabel   string         `json:"detected_label"`
	ManualMinutes   map[string]int `json:"manual_minutes"`
}

// ========================================
// RAW MONTH DATA
// ========================================

type MonthData struct {
	Month    string                      `json:"month"`
	Users    []employee.EmployeeResponse `json:"users"`
	Checkins []checkin.CheckinResponse   `json:"checkins"`
}
