package leavebalance

import "context"

// LeaveBalanceRepository defines data access methods for per-employee
// leave quotas.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)

	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveBalance, error)

	List(ctx context.Context) ([]LeaveBalance, error)

	Update(ctx context.Context, balance LeaveBalance) error

	Delete(ctx context.Context, employeeID string) error

	// IncrementCasualForJuniors adds one casual leave to every junior
	// row and returns the number of rows touched.
	IncrementCasualForJuniors(ctx context.Context) (int64, error)
}
