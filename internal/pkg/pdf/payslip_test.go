package pdf

import (
	"testing"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayslip(t *testing.T) {
	statement := payslip.Statement{
		EmployeeName:      "Asha",
		Period:            "June 2026",
		PayDays:           "30",
		TotalDays:         "30",
		Basic:             "20000.00",
		HRA:               "8000.00",
		Special:           "3000.00",
		EmployeePF:        "1800.00",
		ProfessionalTax:   "200.00",
		MonthlyEarnings:   "43814.00",
		MonthlyDeductions: "2000.00",
		NetPay:            "41814.00",
	}

	data, err := RenderPayslip(statement)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPayslipMinimalStatement(t *testing.T) {
	// Absent items are empty strings and must not break rendering.
	data, err := RenderPayslip(payslip.Statement{EmployeeName: "Binod"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
