package leaverequest

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/hr-backend-go/internal/repository/postgresql"
)

type LeaveRequestService struct {
	db          *database.DB
	requestRepo leaverequest.LeaveRequestRepository
}

func NewLeaveRequestService(db *database.DB, requestRepo leaverequest.LeaveRequestRepository) *LeaveRequestService {
	return &LeaveRequestService{db: db, requestRepo: requestRepo}
}

// Create stores a new leave submission with every date starting out
// pending. The header and date rows commit atomically.
func (s *LeaveRequestService) Create(ctx context.Context, req leaverequest.CreateLeaveRequestRequest) (leaverequest.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}

	dates := make([]leaverequest.LeaveDate, 0, len(req.Dates))
	for _, raw := range req.Dates {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return leaverequest.LeaveRequestResponse{}, err
		}
		dates = append(dates, leaverequest.LeaveDate{
			Date:   date,
			Status: leaverequest.StatusPending,
		})
	}

	request := leaverequest.LeaveRequest{
		StaffID: req.StaffID,
		Name:    req.Name,
		Phone:   req.Phone,
		Reason:  req.Reason,
		Dates:   dates,
	}

	var created leaverequest.LeaveRequest
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.requestRepo.Create(txCtx, request)
		return err
	})
	if err != nil {
		return leaverequest.LeaveRequestResponse{}, fmt.Errorf("create leave request: %w", err)
	}

	return leaverequest.ToResponse(created), nil
}

func (s *LeaveRequestService) ListByStatus(ctx context.Context, status leaverequest.DateStatus) ([]leaverequest.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	responses := make([]leaverequest.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leaverequest.ToResponse(request))
	}
	return responses, nil
}

// UpdateStatus sets one date of a request to a new status and records
// which approver decided it.
func (s *LeaveRequestService) UpdateStatus(ctx context.Context, req leaverequest.UpdateStatusRequest) (leaverequest.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}

	if _, err := s.requestRepo.GetByID(ctx, req.RequestID); err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}

	err = s.requestRepo.UpdateDateStatus(ctx, req.RequestID, date, leaverequest.DateStatus(req.Status), req.UpdatedBy)
	if err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}

	updated, err := s.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leaverequest.LeaveRequestResponse{}, err
	}
	return leaverequest.ToResponse(updated), nil
}
