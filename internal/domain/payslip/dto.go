package payslip

import (
	"github.com/shopspring/decimal"

	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type ComputePayslipRequest struct {
	EmployeeName string `json:"employeeName"`
	Period       string `json:"period"` // e.g. "January 2026"
	BasicSalary  string `json:"basicSalary"`
	PayDays      string `json:"payDays"`
	TotalDays    string `json:"totalDays"`
	Method       int    `json:"method"`
}

func (r *ComputePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "basicSalary",
			Message: "basicSalary is required",
		})
	} else if !validator.IsDecimal(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "basicSalary",
			Message: "basicSalary must be numeric",
		})
	}

	if validator.IsEmpty(r.PayDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "payDays",
			Message: "payDays is required",
		})
	} else if !validator.IsDecimal(r.PayDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "payDays",
			Message: "payDays must be numeric",
		})
	}

	if validator.IsEmpty(r.TotalDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "totalDays",
			Message: "totalDays is required",
		})
	} else if totalDays, err := decimal.NewFromString(r.TotalDays); err != nil || !validator.IsDecimal(r.TotalDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "totalDays",
			Message: "totalDays must be numeric",
		})
	} else if !totalDays.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "totalDays",
			Message: "totalDays must be greater than zero",
		})
	}

	if r.Method < 1 || r.Method > 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be between 1 and 8",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Statement is a fully rendered payslip. Every amount is a 2-decimal
// string; items absent under the chosen method, and zero or negative
// totals, render as the empty string.
type Statement struct {
	EmployeeName string `json:"employeeName"`
	Period       string `json:"period"`
	PayDays      string `json:"payDays"`
	TotalDays    string `json:"totalDays"`

	Basic           string `json:"basic"`
	HRA             string `json:"hra"`
	Conveyance      string `json:"conveyance"`
	Telephone       string `json:"telephone"`
	Education       string `json:"education"`
	Supplementary   string `json:"supplementary"`
	Superannuation  string `json:"superannuation"`
	Adhoc           string `json:"adhoc"`
	Special         string `json:"special"`
	Medical         string `json:"medical"`
	Gratuity        string `json:"gratuity"`
	EmployerPF      string `json:"employerPf"`
	EmployeePF      string `json:"employeePf"`
	ProfessionalTax string `json:"professionalTax"`

	MonthlyEarnings   string `json:"monthlyEarnings"`
	MonthlyDeductions string `json:"monthlyDeductions"`
	NetPay            string `json:"netPay"`
}

// SalaryRow is one employee row parsed from the salary workbook used by
// the batch merge.
type SalaryRow struct {
	EmployeeID   string
	Name         string
	Email        string
	MonthlyBasic string
	PayDays      string
	Method       int
}

// Merge item outcomes.
const (
	MergeSucceeded = "succeeded"
	MergeFailed    = "failed"
	MergeSkipped   = "skipped"
)

// MergeItemResult records the outcome of one employee in a batch run.
type MergeItemResult struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Status     string `json:"status"` // succeeded, failed, skipped
	Reason     string `json:"reason,omitempty"`
}

// MergeSummary is the trailing summary of a batch run. The batch
// continues past individual failures.
type MergeSummary struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Skipped   int               `json:"skipped"`
	Items     []MergeItemResult `json:"items"`
}
