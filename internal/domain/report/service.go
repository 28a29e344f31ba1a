package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateMonthlyReport detects overtime for the month and merges manual entries
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// GetMonthData returns the roster and raw check-ins of the month
	GetMonthData(ctx context.Context, req MonthlyReportRequest) (MonthData, error)
}
