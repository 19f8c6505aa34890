package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
)

// RenderPayslip draws a one-page A4 payslip from a rendered statement.
// Items with empty amounts are omitted from the table.
func RenderPayslip(statement payslip.Statement) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Arial", "", 12)
	doc.Cell(40, 8, fmt.Sprintf("Employee: %s", statement.EmployeeName))
	doc.Ln(8)
	if statement.Period != "" {
		doc.Cell(40, 8, fmt.Sprintf("Period: %s", statement.Period))
		doc.Ln(8)
	}
	if statement.PayDays != "" {
		doc.Cell(40, 8, fmt.Sprintf("Pay days: %s of %s", statement.PayDays, statement.TotalDays))
		doc.Ln(8)
	}
	doc.Ln(4)

	doc.SetFont("Arial", "B", 12)
	doc.Cell(90, 10, "Earnings")
	doc.Cell(90, 10, "Amount")
	doc.Ln(10)

	doc.SetFont("Arial", "", 11)
	earnings := []struct {
		label string
		value string
	}{
		{"Basic", statement.Basic},
		{"House Rent Allowance", statement.HRA},
		{"Conveyance", statement.Conveyance},
		{"Telephone", statement.Telephone},
		{"Education", statement.Education},
		{"Supplementary", statement.Supplementary},
		{"Superannuation", statement.Superannuation},
		{"Adhoc Allowance", statement.Adhoc},
		{"Special Allowance", statement.Special},
		{"Medical", statement.Medical},
		{"Gratuity", statement.Gratuity},
		{"Employer PF", statement.EmployerPF},
	}
	writeRows(doc, earnings)

	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	doc.Cell(90, 10, "Deductions")
	doc.Cell(90, 10, "Amount")
	doc.Ln(10)

	doc.SetFont("Arial", "", 11)
	deductions := []struct {
		label string
		value string
	}{
		{"Employee PF", statement.EmployeePF},
		{"Professional Tax", statement.ProfessionalTax},
	}
	writeRows(doc, deductions)

	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	totals := []struct {
		label string
		value string
	}{
		{"Monthly Earnings", statement.MonthlyEarnings},
		{"Monthly Deductions", statement.MonthlyDeductions},
		{"Net Pay", statement.NetPay},
	}
	writeRows(doc, totals)

	doc.Ln(10)
	doc.SetFont("Arial", "I", 9)
	doc.Cell(0, 10, fmt.Sprintf("Generated on: %s", time.Now().Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(doc *gofpdf.Fpdf, rows []struct {
	label string
	value string
}) {
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		doc.Cell(90, 8, row.label)
		doc.Cell(90, 8, row.value)
		doc.Ln(8)
	}
}
