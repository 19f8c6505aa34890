package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leavebalance"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leavebalance.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, lb leavebalance.LeaveBalance) (leavebalance.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			employee_id, name, role,
			sick_leaves, casual_leaves, privilege_leaves, monthly_leave_status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lb.EmployeeID, lb.Name, lb.Role,
		lb.SickLeaves, lb.CasualLeaves, lb.PrivilegeLeaves, lb.MonthlyLeaveStatus,
	).Scan(&lb.CreatedAt, &lb.UpdatedAt)
	if err != nil {
		return leavebalance.LeaveBalance{}, err
	}

	return lb, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (leavebalance.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, role,
			   sick_leaves, casual_leaves, privilege_leaves, monthly_leave_status,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`

	var lb leavebalance.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&lb.EmployeeID,
		&lb.Name,
		&lb.Role,
		&lb.SickLeaves,
		&lb.CasualLeaves,
		&lb.PrivilegeLeaves,
		&lb.MonthlyLeaveStatus,
		&lb.CreatedAt,
		&lb.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leavebalance.LeaveBalance{}, leavebalance.ErrLeaveBalanceNotFound
		}
		return leavebalance.LeaveBalance{}, err
	}

	return lb, nil
}

func (r *leaveBalanceRepositoryImpl) List(ctx context.Context) ([]leavebalance.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, role,
			   sick_leaves, casual_leaves, privilege_leaves, monthly_leave_status,
			   created_at, updated_at
		FROM leave_balances
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leavebalance.LeaveBalance
	for rows.Next() {
		var lb leavebalance.LeaveBalance
		err := rows.Scan(
			&lb.EmployeeID,
			&lb.Name,
			&lb.Role,
			&lb.SickLeaves,
			&lb.CasualLeaves,
			&lb.PrivilegeLeaves,
			&lb.MonthlyLeaveStatus,
			&lb.CreatedAt,
			&lb.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		balances = append(balances, lb)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, lb leavebalance.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances SET
			name = $1,
			role = $2,
			sick_leaves = $3,
			casual_leaves = $4,
			privilege_leaves = $5,
			monthly_leave_status = $6,
			updated_at = NOW()
		WHERE employee_id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		lb.Name, lb.Role,
		lb.SickLeaves, lb.CasualLeaves, lb.PrivilegeLeaves, lb.MonthlyLeaveStatus,
		lb.EmployeeID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leavebalance.ErrLeaveBalanceNotFound
	}

	return nil
}

func (r *leaveBalanceRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_balances
		WHERE employee_id = $1
	`

	commandTag, err := q.Exec(ctx, query, employeeID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leavebalance.ErrLeaveBalanceNotFound
	}

	return nil
}

func (r *leaveBalanceRepositoryImpl) IncrementCasualForJuniors(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET casual_leaves = casual_leaves + 1, updated_at = NOW()
		WHERE role = $1
	`

	commandTag, err := q.Exec(ctx, query, leavebalance.RoleJunior)
	if err != nil {
		return 0, err
	}

	return commandTag.RowsAffected(), nil
}
