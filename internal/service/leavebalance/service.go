package leavebalance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/leavebalance"
)

type LeaveBalanceService struct {
	balanceRepo leavebalance.LeaveBalanceRepository
}

func NewLeaveBalanceService(balanceRepo leavebalance.LeaveBalanceRepository) *LeaveBalanceService {
	return &LeaveBalanceService{balanceRepo: balanceRepo}
}

// Add creates a ledger entry with the role's opening quota: seniors get
// the yearly sick/casual/privilege pools, juniors start with one
// monthly leave.
func (s *LeaveBalanceService) Add(ctx context.Context, req leavebalance.AddLeaveBalanceRequest) (leavebalance.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leavebalance.LeaveBalanceResponse{}, err
	}

	_, err := s.balanceRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		return leavebalance.LeaveBalanceResponse{}, leavebalance.ErrLeaveBalanceExists
	}
	if !errors.Is(err, leavebalance.ErrLeaveBalanceNotFound) {
		return leavebalance.LeaveBalanceResponse{}, fmt.Errorf("check leave balance: %w", err)
	}

	role := leavebalance.Role(req.Role)
	sick, casual, privilege, monthly := leavebalance.InitialBalances(role)

	created, err := s.balanceRepo.Create(ctx, leavebalance.LeaveBalance{
		EmployeeID:         req.EmployeeID,
		Name:               req.Name,
		Role:               role,
		SickLeaves:         sick,
		CasualLeaves:       casual,
		PrivilegeLeaves:    privilege,
		MonthlyLeaveStatus: monthly,
	})
	if err != nil {
		return leavebalance.LeaveBalanceResponse{}, fmt.Errorf("create leave balance: %w", err)
	}

	return leavebalance.ToResponse(created), nil
}

func (s *LeaveBalanceService) List(ctx context.Context) ([]leavebalance.LeaveBalanceResponse, error) {
	balances, err := s.balanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leave balances: %w", err)
	}

	responses := make([]leavebalance.LeaveBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		responses = append(responses, leavebalance.ToResponse(balance))
	}
	return responses, nil
}

// Edit updates ledger fields. A role change re-applies the new role's
// initialization before explicit quota values from the request land on
// top, so junior accruals never leak into a senior ledger and vice
// versa.
func (s *LeaveBalanceService) Edit(ctx context.Context, req leavebalance.EditLeaveBalanceRequest) (leavebalance.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leavebalance.LeaveBalanceResponse{}, err
	}

	balance, err := s.balanceRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return leavebalance.LeaveBalanceResponse{}, err
	}

	if req.Role != nil && leavebalance.Role(*req.Role) != balance.Role {
		balance.Role = leavebalance.Role(*req.Role)
		balance.SickLeaves, balance.CasualLeaves, balance.PrivilegeLeaves, balance.MonthlyLeaveStatus =
			leavebalance.InitialBalances(balance.Role)
	}

	if req.Name != nil {
		balance.Name = *req.Name
	}
	if req.SickLeaves != nil {
		balance.SickLeaves = *req.SickLeaves
	}
	if req.CasualLeaves != nil {
		balance.CasualLeaves = *req.CasualLeaves
	}
	if req.PrivilegeLeaves != nil {
		balance.PrivilegeLeaves = *req.PrivilegeLeaves
	}
	if req.MonthlyLeaveStatus != nil {
		balance.MonthlyLeaveStatus = *req.MonthlyLeaveStatus
	}

	if err := s.balanceRepo.Update(ctx, balance); err != nil {
		return leavebalance.LeaveBalanceResponse{}, err
	}

	return leavebalance.ToResponse(balance), nil
}

func (s *LeaveBalanceService) Remove(ctx context.Context, employeeID string) error {
	return s.balanceRepo.Delete(ctx, employeeID)
}

// ResetMonthlyJob adapts ResetMonthly to the scheduler. It fires daily
// but only applies the credit on the first of the month.
func (s *LeaveBalanceService) ResetMonthlyJob(ctx context.Context) error {
	if time.Now().UTC().Day() != 1 {
		return nil
	}
	_, err := s.ResetMonthly(ctx)
	return err
}

// ResetMonthly credits one casual leave to every junior. Seniors carry
// fixed yearly pools and are untouched.
func (s *LeaveBalanceService) ResetMonthly(ctx context.Context) (int64, error) {
	updated, err := s.balanceRepo.IncrementCasualForJuniors(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset monthly leaves: %w", err)
	}

	slog.Info("monthly leave reset applied", "juniors_updated", updated)
	return updated, nil
}
