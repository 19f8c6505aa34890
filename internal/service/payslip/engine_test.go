package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payslipRequest(basic, payDays, totalDays string, method int) payslip.ComputePayslipRequest {
	return payslip.ComputePayslipRequest{
		BasicSalary: basic,
		PayDays:     payDays,
		TotalDays:   totalDays,
		Method:      method,
	}
}

func compute(t *testing.T, basic, payDays, totalDays string, method int) Breakdown {
	t.Helper()
	b, err := Compute(
		decimal.RequireFromString(basic),
		decimal.RequireFromString(payDays),
		decimal.RequireFromString(totalDays),
		method,
	)
	require.NoError(t, err)
	return b
}

func TestComputePFBoundary(t *testing.T) {
	cases := []struct {
		name   string
		basic  string
		wantPF string
	}{
		{"exactly at ceiling", "15000", "1800.00"},
		{"below ceiling", "10000", "1200.00"},
		{"just above ceiling", "15001", "1800.00"},
		{"well above ceiling", "50000", "1800.00"},
		{"small basic", "5000", "600.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := compute(t, c.basic, "30", "30", 1)
			assert.Equal(t, c.wantPF, b.EmployeePF.StringFixed(2))
			assert.True(t, b.EmployeePF.Equal(b.EmployerPF), "employee and employer PF must match")
		})
	}
}

func TestComputeMethod5(t *testing.T) {
	b := compute(t, "20000", "30", "30", 5)
	statement := Render(b, "A Tester", "January 2026", "30", "30")

	assert.Equal(t, "", statement.Adhoc, "method 5 carries no adhoc allowance")
	assert.Equal(t, "3000.00", statement.Special)
	assert.Equal(t, "600.00", statement.Telephone)
	assert.Equal(t, "964.00", statement.Gratuity)
	assert.Equal(t, "1800.00", statement.EmployeePF)
}

func TestComputeProration(t *testing.T) {
	b := compute(t, "30000", "15", "30", 1)

	assert.Equal(t, "15000.00", b.Basic.StringFixed(2))
	assert.Equal(t, "6000.00", b.HRA.StringFixed(2))
	assert.Equal(t, "750.00", b.Conveyance.StringFixed(2))
	// Prorated basic sits exactly at the ceiling, so percentage PF applies.
	assert.Equal(t, "1800.00", b.EmployeePF.StringFixed(2))
}

func TestComputeNetInvariant(t *testing.T) {
	basics := []string{"8000", "15000", "20000", "42500.50"}

	for method := 1; method <= 8; method++ {
		for _, basic := range basics {
			b := compute(t, basic, "30", "30", method)

			wantNet := b.MonthlyEarnings.Sub(b.MonthlyDeductions)
			assert.True(t, b.NetPay.Equal(wantNet),
				"method %d basic %s: net %s != earnings %s - deductions %s",
				method, basic, b.NetPay, b.MonthlyEarnings, b.MonthlyDeductions)
			assert.True(t, b.NetPay.IsPositive(),
				"method %d basic %s: net must stay positive", method, basic)
		}
	}
}

func TestComputeMethodTable(t *testing.T) {
	cases := []struct {
		method    int
		telephone string
		hasAdhoc  bool
		special   string
	}{
		{1, "600.00", true, ""},
		{2, "300.00", true, ""},
		{3, "300.00", true, "1900.00"},
		{4, "600.00", true, "1900.00"},
		{5, "600.00", false, "3000.00"},
		{6, "300.00", true, "3000.00"},
		{7, "300.00", false, ""},
		{8, "300.00", true, "4000.00"},
	}

	for _, c := range cases {
		b := compute(t, "20000", "30", "30", c.method)
		statement := Render(b, "", "", "30", "30")

		assert.Equal(t, c.telephone, statement.Telephone, "method %d telephone", c.method)
		assert.Equal(t, c.special, statement.Special, "method %d special", c.method)
		if c.hasAdhoc {
			// 26% of 20000
			assert.Equal(t, "5200.00", statement.Adhoc, "method %d adhoc", c.method)
		} else {
			assert.Equal(t, "", statement.Adhoc, "method %d adhoc", c.method)
		}
	}
}

func TestComputeUnknownMethod(t *testing.T) {
	_, err := Compute(decimal.NewFromInt(10000), decimal.NewFromInt(30), decimal.NewFromInt(30), 9)
	assert.Error(t, err)

	_, err = Compute(decimal.NewFromInt(10000), decimal.NewFromInt(30), decimal.NewFromInt(30), 0)
	assert.Error(t, err)
}

func TestComputeZeroTotalDays(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := Compute(decimal.NewFromInt(30000), decimal.NewFromInt(30), decimal.Zero, 1)
		assert.ErrorIs(t, err, payslip.ErrInvalidTotalDays)
	})

	_, err := Compute(decimal.NewFromInt(30000), decimal.NewFromInt(30), decimal.NewFromInt(-30), 1)
	assert.ErrorIs(t, err, payslip.ErrInvalidTotalDays)
}

func TestRenderNeverEmitsZeroAmounts(t *testing.T) {
	b := compute(t, "20000", "30", "30", 7)
	statement := Render(b, "", "", "30", "30")

	assert.NotEqual(t, "0.00", statement.Adhoc)
	assert.NotEqual(t, "0.00", statement.Special)
	assert.Equal(t, "", statement.Adhoc)
	assert.Equal(t, "", statement.Special)
}

func TestComputeStatementValidation(t *testing.T) {
	svc := NewPayslipService(nil, "")

	cases := []struct {
		name                      string
		basic, payDays, totalDays string
		method                    int
	}{
		{"missing basic", "", "30", "30", 1},
		{"non numeric basic", "abc", "30", "30", 1},
		{"missing pay days", "20000", "", "30", 1},
		{"zero total days", "20000", "30", "0", 1},
		{"fractional zero total days", "20000", "30", "0.0", 1},
		{"padded zero total days", "20000", "30", "00", 1},
		{"two decimal zero total days", "20000", "30", "0.00", 1},
		{"negative total days", "20000", "30", "-30", 1},
		{"method out of range", "20000", "30", "30", 12},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.ComputeStatement(payslipRequest(c.basic, c.payDays, c.totalDays, c.method))
			assert.Error(t, err)
		})
	}
}
