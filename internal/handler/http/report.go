package http

import (
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly overtime report: detected records, manual entries and totals
	GetOvertimeReport(w http.ResponseWriter, r *http.Request)

	// Raw roster and check-ins of a month
	GetMonthData(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetOvertimeReport handles GET /reports/overtime?month=YYYY-MM
func (h *reportHandlerImpl) GetOvertimeReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthData handles GET /data?month=YYYY-MM
func (h *reportHandlerImpl) GetMonthData(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.reportService.GetMonthData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
