package payslip

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
)

// Percentage components derived from the prorated basic.
var (
	hraRate            = decimal.NewFromFloat(0.40)
	conveyanceRate     = decimal.NewFromFloat(0.05)
	supplementaryRate  = decimal.NewFromFloat(0.20)
	superannuationRate = decimal.NewFromFloat(0.15)
	gratuityRate       = decimal.NewFromFloat(0.0482)
	adhocRate          = decimal.NewFromFloat(0.26)
	pfRate             = decimal.NewFromFloat(0.12)
)

// Fixed monthly components.
var (
	medicalAmount   = decimal.NewFromInt(1250)
	educationAmount = decimal.NewFromInt(200)
	professionalTax = decimal.NewFromInt(200)

	pfCeilingBasic = decimal.NewFromInt(15000)
	pfCeilingFlat  = decimal.NewFromInt(1800)
)

// methodParams holds the per-method overrides: the telephone allowance
// amount, whether the adhoc allowance (26% of basic) applies, and a
// flat special allowance (zero means absent).
type methodParams struct {
	telephone decimal.Decimal
	adhoc     bool
	special   decimal.Decimal
}

var methods = map[int]methodParams{
	1: {telephone: decimal.NewFromInt(600), adhoc: true},
	2: {telephone: decimal.NewFromInt(300), adhoc: true},
	3: {telephone: decimal.NewFromInt(300), adhoc: true, special: decimal.NewFromInt(1900)},
	4: {telephone: decimal.NewFromInt(600), adhoc: true, special: decimal.NewFromInt(1900)},
	5: {telephone: decimal.NewFromInt(600), special: decimal.NewFromInt(3000)},
	6: {telephone: decimal.NewFromInt(300), adhoc: true, special: decimal.NewFromInt(3000)},
	7: {telephone: decimal.NewFromInt(300)},
	8: {telephone: decimal.NewFromInt(300), adhoc: true, special: decimal.NewFromInt(4000)},
}

// Breakdown is a computed payslip before rendering. All amounts are
// rounded to 2 decimals; absent items are zero.
type Breakdown struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Conveyance      decimal.Decimal
	Telephone       decimal.Decimal
	Education       decimal.Decimal
	Supplementary   decimal.Decimal
	Superannuation  decimal.Decimal
	Adhoc           decimal.Decimal
	Special         decimal.Decimal
	Medical         decimal.Decimal
	Gratuity        decimal.Decimal
	EmployerPF      decimal.Decimal
	EmployeePF      decimal.Decimal
	ProfessionalTax decimal.Decimal

	MonthlyEarnings   decimal.Decimal
	MonthlyDeductions decimal.Decimal
	NetPay            decimal.Decimal
}

// Compute derives a full payslip from the monthly basic, prorated by
// payDays/totalDays, under one of the eight allowance methods.
func Compute(monthlyBasic, payDays, totalDays decimal.Decimal, method int) (Breakdown, error) {
	params, ok := methods[method]
	if !ok {
		return Breakdown{}, payslip.ErrUnknownMethod
	}
	if !totalDays.IsPositive() {
		return Breakdown{}, payslip.ErrInvalidTotalDays
	}

	// Prorated basic for the period.
	basic := monthlyBasic.Mul(payDays).Div(totalDays)

	b := Breakdown{
		Basic:           basic.Round(2),
		HRA:             basic.Mul(hraRate).Round(2),
		Conveyance:      basic.Mul(conveyanceRate).Round(2),
		Telephone:       params.telephone,
		Education:       educationAmount,
		Supplementary:   basic.Mul(supplementaryRate).Round(2),
		Superannuation:  basic.Mul(superannuationRate).Round(2),
		Special:         params.special,
		Medical:         medicalAmount,
		Gratuity:        basic.Mul(gratuityRate).Round(2),
		ProfessionalTax: professionalTax,
	}

	if params.adhoc {
		b.Adhoc = basic.Mul(adhocRate).Round(2)
	}

	// Provident fund, employee and employer sides equal: flat at the
	// ceiling once basic exceeds 15000, else 12% of basic.
	pf := basic.Mul(pfRate).Round(2)
	if basic.GreaterThan(pfCeilingBasic) {
		pf = pfCeilingFlat
	}
	b.EmployeePF = pf
	b.EmployerPF = pf

	b.MonthlyEarnings = decimal.Sum(
		b.Basic, b.HRA, b.Conveyance, b.Telephone, b.Education,
		b.Supplementary, b.Superannuation, b.Adhoc, b.Special,
		b.Medical, b.Gratuity, b.EmployerPF,
	)
	b.MonthlyDeductions = b.EmployeePF.Add(b.ProfessionalTax)
	b.NetPay = b.MonthlyEarnings.Sub(b.MonthlyDeductions)

	return b, nil
}

// Render formats a breakdown into the statement the UI and the PDF
// consume. Amounts are 2-decimal strings; zero or negative values
// render empty, never "0.00".
func Render(b Breakdown, employeeName, period, payDays, totalDays string) payslip.Statement {
	return payslip.Statement{
		EmployeeName: employeeName,
		Period:       period,
		PayDays:      payDays,
		TotalDays:    totalDays,

		Basic:           renderAmount(b.Basic),
		HRA:             renderAmount(b.HRA),
		Conveyance:      renderAmount(b.Conveyance),
		Telephone:       renderAmount(b.Telephone),
		Education:       renderAmount(b.Education),
		Supplementary:   renderAmount(b.Supplementary),
		Superannuation:  renderAmount(b.Superannuation),
		Adhoc:           renderAmount(b.Adhoc),
		Special:         renderAmount(b.Special),
		Medical:         renderAmount(b.Medical),
		Gratuity:        renderAmount(b.Gratuity),
		EmployerPF:      renderAmount(b.EmployerPF),
		EmployeePF:      renderAmount(b.EmployeePF),
		ProfessionalTax: renderAmount(b.ProfessionalTax),

		MonthlyEarnings:   renderAmount(b.MonthlyEarnings),
		MonthlyDeductions: renderAmount(b.MonthlyDeductions),
		NetPay:            renderAmount(b.NetPay),
	}
}

func renderAmount(d decimal.Decimal) string {
	if d.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	return d.StringFixed(2)
}
