package payslip

import "errors"

// Payslip domain errors
var (
	ErrUnknownMethod     = errors.New("unknown payslip method")
	ErrInvalidTotalDays  = errors.New("totalDays must be greater than zero")
	ErrSalaryFileMissing = errors.New("salary workbook not found")
	ErrEmailDelivery     = errors.New("payslip email delivery failed")
)
