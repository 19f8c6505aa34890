package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	attendancedomain "github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
	attendanceservice "github.com/staffhub-hr/hr-backend-go/internal/service/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/service/export"
)

type AttendanceHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	GetByIDDate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceservice.AttendanceService
}

func NewAttendanceHandler(attendanceService *attendanceservice.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req attendancedomain.SaveAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.attendanceService.Save(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance saved", saved)
}

// The punch surface reports bad fields as a plain 400; the kiosk client
// treats anything else as a retryable fault.
func (h *attendanceHandlerImpl) handleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}
	response.HandleError(w, err)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *attendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *attendanceHandlerImpl) GetByIDDate(w http.ResponseWriter, r *http.Request) {
	var req attendancedomain.GetByIDDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.GetByIDDate(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, record)
}

// Export streams one day's punch records as CSV or XLSX.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	rawDate := r.URL.Query().Get("date")
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if rawDate != "" {
		date, err = time.Parse("2006-01-02", rawDate)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
	}

	records, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := export.Attendance(records, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "attendance-" + date.Format("2006-01-02") + "." + string(format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
