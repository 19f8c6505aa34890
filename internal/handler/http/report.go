package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/report"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hr-backend-go/internal/service/export"
	reportservice "github.com/staffhub-hr/hr-backend-go/internal/service/report"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.ReportService
}

func NewReportHandler(reportService *reportservice.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthlyPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.Monthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// ExportMonthly streams the monthly summary as CSV or XLSX.
func (h *reportHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthlyPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	rows, err := h.reportService.Monthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := export.MonthlyReport(rows, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "monthly-report-" + strconv.Itoa(year) + "-" + strconv.Itoa(int(month)) + "." + string(format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func monthlyPeriod(r *http.Request) (int, time.Month, error) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}
	if err := req.Validate(); err != nil {
		return 0, 0, err
	}
	year, month := req.Period()
	return year, month, nil
}
