package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leavebalance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/payslip"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRoleNotConfigured):
		Unauthorized(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffIDExists):
		Conflict(w, "Staff id already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoNewData):
		Conflict(w, "No new data to save")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be recorded for a future date", nil)
	case errors.Is(err, attendance.ErrUnknownStaff):
		BadRequest(w, "No staff with this id", nil)

	// Leave request domain errors
	case errors.Is(err, leaverequest.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leaverequest.ErrLeaveDateNotFound):
		NotFound(w, "Requested date not part of this leave request")

	// Leave balance domain errors
	case errors.Is(err, leavebalance.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leavebalance.ErrLeaveBalanceExists):
		Conflict(w, "Leave balance already exists for this employee")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrUnknownMethod):
		BadRequest(w, "Unknown payslip method", nil)
	case errors.Is(err, payslip.ErrInvalidTotalDays):
		BadRequest(w, "totalDays must be greater than zero", nil)
	case errors.Is(err, payslip.ErrSalaryFileMissing):
		NotFound(w, "Salary workbook not found")
	case errors.Is(err, payslip.ErrEmailDelivery):
		InternalServerError(w, "Payslip email delivery failed")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
