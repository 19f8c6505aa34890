package report

import (
	"strconv"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month string `json:"month"` // 1-12
	Year  string `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	month, err := strconv.Atoi(r.Month)
	if err != nil || month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a number between 1 and 12",
		})
	}

	year, err := strconv.Atoi(r.Year)
	if err != nil || year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the parsed month and year. Call Validate first.
func (r *MonthlyReportRequest) Period() (int, time.Month) {
	year, _ := strconv.Atoi(r.Year)
	month, _ := strconv.Atoi(r.Month)
	return year, time.Month(month)
}

// MonthlyReportRow is one employee's attendance summary for a month.
// Half days contribute 0.5 to both working days and leaves, so the
// counts are fractional.
type MonthlyReportRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	NoOfDays     int     `json:"no_of_days"`
	NoOfWorking  float64 `json:"no_of_working_days"`
	NoOfLeaves   float64 `json:"no_of_leaves"`
}
