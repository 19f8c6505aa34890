package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	payslipdomain "github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
	payslipservice "github.com/staffhub-hr/hr-backend-go/internal/service/payslip"
)

type PayslipHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	SendPayslipEmail(w http.ResponseWriter, r *http.Request)
	Merge(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService *payslipservice.PayslipService
}

func NewPayslipHandler(payslipService *payslipservice.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req payslipdomain.ComputePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	statement, err := h.payslipService.ComputeStatement(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statement)
}

// SendPayslipEmail accepts a multipart form with the rendered payslip
// PDF and the recipient address.
func (h *payslipHandlerImpl) SendPayslipEmail(w http.ResponseWriter, r *http.Request) {
	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	to := r.FormValue("employeeEmail")
	if !validator.IsValidEmail(to) {
		response.BadRequest(w, "employeeEmail must be a valid address", nil)
		return
	}
	employeeName := r.FormValue("employeeName")
	period := r.FormValue("period")

	file, _, err := r.FormFile("payslip")
	if err != nil {
		response.BadRequest(w, "Payslip PDF file is required", nil)
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read payslip file", nil)
		return
	}

	if err := h.payslipService.SendPayslipEmail(to, employeeName, period, pdfData); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip email sent", nil)
}

// Merge runs the batch payslip generation. By default it parses the
// configured salary workbook and returns a zip of PDFs with the batch
// summary in a header; email=true sends each payslip instead and
// returns the summary as JSON. A workbook may also be uploaded as
// multipart field "salaryFile".
func (h *payslipHandlerImpl) Merge(w http.ResponseWriter, r *http.Request) {
	year, month := mergePeriod(r)
	emailMode := r.URL.Query().Get("email") == "true"

	var workbook io.Reader
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(20 << 20); err != nil {
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}
		file, _, err := r.FormFile("salaryFile")
		if err == nil {
			defer file.Close()
			workbook = file
		}
	}

	archive, summary, err := h.payslipService.Merge(workbook, year, month, emailMode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if emailMode {
		response.SuccessWithMessage(w, "Payslip batch finished", summary)
		return
	}

	summaryJSON, _ := json.Marshal(summary)
	filename := "payslips-" + strconv.Itoa(year) + "-" + strconv.Itoa(int(month)) + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("X-Batch-Summary", string(summaryJSON))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func mergePeriod(r *http.Request) (int, time.Month) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			year = v
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= 12 {
			month = time.Month(v)
		}
	}

	return year, month
}
