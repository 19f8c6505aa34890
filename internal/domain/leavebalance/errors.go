package leavebalance

import "errors"

// Leave balance domain errors
var (
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")
	ErrLeaveBalanceExists   = errors.New("leave balance already exists for this employee")
)
