package leavebalance

import (
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type AddLeaveBalanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

func (r *AddLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidStaffID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 3-20 characters of letters, digits, hyphen or underscore",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleJunior), string(RoleSenior)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: junior, senior",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EditLeaveBalanceRequest updates quota fields directly. Pointer fields
// distinguish "leave unchanged" from an explicit zero.
type EditLeaveBalanceRequest struct {
	EmployeeID         string   `json:"employee_id"`
	Name               *string  `json:"name,omitempty"`
	Role               *string  `json:"role,omitempty"`
	SickLeaves         *float64 `json:"sick_leaves,omitempty"`
	CasualLeaves       *float64 `json:"casual_leaves,omitempty"`
	PrivilegeLeaves    *float64 `json:"privilege_leaves,omitempty"`
	MonthlyLeaveStatus *float64 `json:"monthly_leave_status,omitempty"`
}

func (r *EditLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleJunior), string(RoleSenior)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: junior, senior",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveBalanceResponse struct {
	EmployeeID         string  `json:"employee_id"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	SickLeaves         float64 `json:"sick_leaves"`
	CasualLeaves       float64 `json:"casual_leaves"`
	PrivilegeLeaves    float64 `json:"privilege_leaves"`
	MonthlyLeaveStatus float64 `json:"monthly_leave_status"`
}

func ToResponse(lb LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID:         lb.EmployeeID,
		Name:               lb.Name,
		Role:               string(lb.Role),
		SickLeaves:         lb.SickLeaves,
		CasualLeaves:       lb.CasualLeaves,
		PrivilegeLeaves:    lb.PrivilegeLeaves,
		MonthlyLeaveStatus: lb.MonthlyLeaveStatus,
	}
}
