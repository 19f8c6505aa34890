package leavebalance

import "time"

type Role string

const (
	RoleJunior Role = "junior"
	RoleSenior Role = "senior"
)

// LeaveBalance tracks the remaining leave quota of one employee.
// Seniors carry yearly sick/casual/privilege pools; juniors accrue one
// monthly leave per reset cycle instead.
type LeaveBalance struct {
	EmployeeID         string
	Name               string
	Role               Role
	SickLeaves         float64
	CasualLeaves       float64
	PrivilegeLeaves    float64
	MonthlyLeaveStatus float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// InitialBalances returns the opening quota for a role. Applied on
// creation and whenever the role changes.
func InitialBalances(role Role) (sick, casual, privilege, monthly float64) {
	if role == RoleSenior {
		return 6, 4, 12, 0
	}
	return 0, 0, 0, 1
}
