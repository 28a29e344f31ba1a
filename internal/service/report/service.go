package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/overtime-backend-go/internal/observability"
)

type ReportServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	checkinRepo     checkin.CheckinRepository
	manualEntryRepo manualentry.ManualEntryRepository
	detector        overtime.Detector
	now             func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	checkinRepo checkin.CheckinRepository,
	manualEntryRepo manualentry.ManualEntryRepository,
	detector overtime.Detector,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:    employeeRepo,
		checkinRepo:     checkinRepo,
		manualEntryRepo: manualEntryRepo,
		detector:        detector,
		now:             time.Now,
	}
}

// GenerateMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}
	defer observability.ObserveReportDuration(s.now())

	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: roster: %w", report.ErrReportGenerationFailed, err)
	}

	events, err := s.checkinRepo.ListByMonth(ctx, req.Period)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: checkins: %w", report.ErrReportGenerationFailed, err)
	}

	entries, err := s.manualEntryRepo.ListByMonth(ctx, req.Period)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: manual entries: %w", report.ErrReportGenerationFailed, err)
	}

	records := s.detector.DetectMonth(events)
	for _, rec := range records {
		observability.RecordDetected(string(rec.Rule))
	}

	result := Assemble(req.Period, records, entries, roster, s.now())
	slog.Info("Generated overtime report",
		"month", result.Month,
		"checkins", len(events),
		"detected", len(result.DetectedOvertime),
		"manual", len(result.ManualEntries),
	)
	return result, nil
}

// GetMonthData implements report.ReportService.
func (s *ReportServiceImpl) GetMonthData(ctx context.Context, req report.MonthlyReportRequest) (report.MonthData, error) {
	if err := req.Validate(); err != nil {
		return report.MonthData{}, err
	}

	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthData{}, fmt.Errorf("failed to get employees: %w", err)
	}

	events, err := s.checkinRepo.ListByMonth(ctx, req.Period)
	if err != nil {
		return report.MonthData{}, fmt.Errorf("failed to get checkins: %w", err)
	}

	return report.MonthData{
		Month:    req.Period.String(),
		Users:    employee.ToResponses(roster),
		Checkins: checkin.ToResponses(events),
	}, nil
}
