package payslip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/email"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/pdf"
	"github.com/xuri/excelize/v2"
)

type PayslipService struct {
	emailService       email.EmailService
	salaryWorkbookPath string
}

func NewPayslipService(emailService email.EmailService, salaryWorkbookPath string) *PayslipService {
	return &PayslipService{
		emailService:       emailService,
		salaryWorkbookPath: salaryWorkbookPath,
	}
}

// ComputeStatement runs the payslip engine on one form submission.
func (s *PayslipService) ComputeStatement(req payslip.ComputePayslipRequest) (payslip.Statement, error) {
	if err := req.Validate(); err != nil {
		return payslip.Statement{}, err
	}

	basic, err := decimal.NewFromString(req.BasicSalary)
	if err != nil {
		return payslip.Statement{}, fmt.Errorf("parse basicSalary: %w", err)
	}
	payDays, err := decimal.NewFromString(req.PayDays)
	if err != nil {
		return payslip.Statement{}, fmt.Errorf("parse payDays: %w", err)
	}
	totalDays, err := decimal.NewFromString(req.TotalDays)
	if err != nil {
		return payslip.Statement{}, fmt.Errorf("parse totalDays: %w", err)
	}

	breakdown, err := Compute(basic, payDays, totalDays, req.Method)
	if err != nil {
		return payslip.Statement{}, err
	}

	return Render(breakdown, req.EmployeeName, req.Period, req.PayDays, req.TotalDays), nil
}

// SendPayslipEmail delivers an already-rendered payslip PDF.
func (s *PayslipService) SendPayslipEmail(to, employeeName, period string, pdfData []byte) error {
	if err := s.emailService.SendPayslip(to, employeeName, period, pdfData); err != nil {
		return fmt.Errorf("%w: %v", payslip.ErrEmailDelivery, err)
	}
	return nil
}

// Merge runs the batch: parse the salary workbook, compute and render a
// payslip per employee, and either zip the PDFs or email them out. One
// employee at a time; a failure marks that row and the batch moves on.
func (s *PayslipService) Merge(workbook io.Reader, year int, month time.Month, emailMode bool) ([]byte, payslip.MergeSummary, error) {
	if workbook == nil {
		f, err := os.Open(s.salaryWorkbookPath)
		if err != nil {
			return nil, payslip.MergeSummary{}, payslip.ErrSalaryFileMissing
		}
		defer f.Close()
		workbook = f
	}

	rows, err := parseSalaryWorkbook(workbook)
	if err != nil {
		return nil, payslip.MergeSummary{}, err
	}

	period := fmt.Sprintf("%s %d", month.String(), year)
	totalDays := decimal.NewFromInt(int64(daysInMonth(year, month)))

	var zipBuf bytes.Buffer
	var zipWriter *zip.Writer
	if !emailMode {
		zipWriter = zip.NewWriter(&zipBuf)
	}

	var summary payslip.MergeSummary
	for _, row := range rows {
		result := s.mergeOne(row, period, totalDays, zipWriter, emailMode)
		summary.Items = append(summary.Items, result)
		switch result.Status {
		case payslip.MergeSucceeded:
			summary.Succeeded++
		case payslip.MergeSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	if zipWriter != nil {
		if err := zipWriter.Close(); err != nil {
			return nil, summary, fmt.Errorf("finalize payslip archive: %w", err)
		}
	}

	slog.Info("payslip batch finished",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)

	return zipBuf.Bytes(), summary, nil
}

func (s *PayslipService) mergeOne(row payslip.SalaryRow, period string, totalDays decimal.Decimal, zipWriter *zip.Writer, emailMode bool) payslip.MergeItemResult {
	result := payslip.MergeItemResult{EmployeeID: row.EmployeeID, Name: row.Name}

	if row.MonthlyBasic == "" {
		result.Status = payslip.MergeSkipped
		result.Reason = "missing salary"
		return result
	}

	basic, err := decimal.NewFromString(row.MonthlyBasic)
	if err != nil {
		result.Status = payslip.MergeFailed
		result.Reason = "invalid salary: " + row.MonthlyBasic
		return result
	}
	payDays, err := decimal.NewFromString(row.PayDays)
	if err != nil {
		result.Status = payslip.MergeFailed
		result.Reason = "invalid pay days: " + row.PayDays
		return result
	}

	breakdown, err := Compute(basic, payDays, totalDays, row.Method)
	if err != nil {
		result.Status = payslip.MergeFailed
		result.Reason = err.Error()
		return result
	}
	statement := Render(breakdown, row.Name, period, row.PayDays, totalDays.String())

	pdfData, err := pdf.RenderPayslip(statement)
	if err != nil {
		result.Status = payslip.MergeFailed
		result.Reason = err.Error()
		return result
	}

	if emailMode {
		if row.Email == "" {
			result.Status = payslip.MergeSkipped
			result.Reason = "missing email"
			return result
		}
		if err := s.emailService.SendPayslip(row.Email, row.Name, period, pdfData); err != nil {
			result.Status = payslip.MergeFailed
			result.Reason = err.Error()
			return result
		}
	} else {
		entry, err := zipWriter.Create(fmt.Sprintf("payslip-%s.pdf", row.EmployeeID))
		if err != nil {
			result.Status = payslip.MergeFailed
			result.Reason = err.Error()
			return result
		}
		if _, err := entry.Write(pdfData); err != nil {
			result.Status = payslip.MergeFailed
			result.Reason = err.Error()
			return result
		}
	}

	result.Status = payslip.MergeSucceeded
	return result
}

// parseSalaryWorkbook reads the first sheet of the salary workbook.
// Expected columns: employee id, name, email, monthly basic, pay days,
// method. The first row is the header.
func parseSalaryWorkbook(r io.Reader) ([]payslip.SalaryRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open salary workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("salary workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read salary workbook: %w", err)
	}

	var salaries []payslip.SalaryRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}

		method, _ := strconv.Atoi(strings.TrimSpace(cell(row, 5)))
		salaries = append(salaries, payslip.SalaryRow{
			EmployeeID:   strings.TrimSpace(cell(row, 0)),
			Name:         strings.TrimSpace(cell(row, 1)),
			Email:        strings.TrimSpace(cell(row, 2)),
			MonthlyBasic: strings.TrimSpace(cell(row, 3)),
			PayDays:      strings.TrimSpace(cell(row, 4)),
			Method:       method,
		})
	}

	return salaries, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
