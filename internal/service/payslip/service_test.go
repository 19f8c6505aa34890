package payslip

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func salaryWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []any{"employee_id", "name", "email", "monthly_basic", "pay_days", "method"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestMergeProducesZipAndSummary(t *testing.T) {
	svc := NewPayslipService(nil, "")
	workbook := salaryWorkbook(t, [][]any{
		{"EMP001", "Asha", "asha@example.com", "20000", "30", "5"},
		{"EMP002", "Binod", "binod@example.com", "15000", "28", "1"},
	})

	archive, summary, err := svc.Merge(workbook, 2026, time.June, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "payslip-EMP001.pdf", zr.File[0].Name)
	assert.Equal(t, "payslip-EMP002.pdf", zr.File[1].Name)
}

func TestMergeContinuesPastFailures(t *testing.T) {
	svc := NewPayslipService(nil, "")
	workbook := salaryWorkbook(t, [][]any{
		{"EMP001", "Asha", "", "20000", "30", "1"},
		{"EMP002", "Binod", "", "", "30", "1"},        // no salary: skipped
		{"EMP003", "Chitra", "", "x9000", "30", "1"},  // bad salary: failed
		{"EMP004", "Deepak", "", "18000", "30", "42"}, // bad method: failed
		{"EMP005", "Esha", "", "12000", "30", "7"},
	})

	archive, summary, err := svc.Merge(workbook, 2026, time.June, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Items, 5)
	assert.Equal(t, payslip.MergeSkipped, summary.Items[1].Status)
	assert.Equal(t, "missing salary", summary.Items[1].Reason)
	assert.Equal(t, payslip.MergeFailed, summary.Items[2].Status)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2, "only the successful payslips land in the archive")
}

func TestMergeMissingConfiguredWorkbook(t *testing.T) {
	svc := NewPayslipService(nil, "/nonexistent/salary.xlsx")

	_, _, err := svc.Merge(nil, 2026, time.June, false)
	assert.ErrorIs(t, err, payslip.ErrSalaryFileMissing)
}

func TestComputeStatementRendersFullStatement(t *testing.T) {
	svc := NewPayslipService(nil, "")

	statement, err := svc.ComputeStatement(payslip.ComputePayslipRequest{
		EmployeeName: "Asha",
		Period:       "June 2026",
		BasicSalary:  "20000",
		PayDays:      "30",
		TotalDays:    "30",
		Method:       5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", statement.EmployeeName)
	assert.Equal(t, "20000.00", statement.Basic)
	assert.Equal(t, "8000.00", statement.HRA)
	assert.Equal(t, "1000.00", statement.Conveyance)
	assert.Equal(t, "3000.00", statement.Special)
	assert.Equal(t, "", statement.Adhoc)
	assert.Equal(t, "1250.00", statement.Medical)
	assert.Equal(t, "200.00", statement.ProfessionalTax)
	assert.Equal(t, "43814.00", statement.MonthlyEarnings)
	assert.Equal(t, "2000.00", statement.MonthlyDeductions)
	assert.Equal(t, "41814.00", statement.NetPay)
}
