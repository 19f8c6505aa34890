package leaverequest

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave
// submissions and their per-date statuses.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByStatus returns requests having at least one date with the
	// given status, newest first.
	ListByStatus(ctx context.Context, status DateStatus) ([]LeaveRequest, error)

	// UpdateDateStatus sets the status and approver of a single date of
	// a request. Returns ErrLeaveDateNotFound when the date is not part
	// of the request.
	UpdateDateStatus(ctx context.Context, requestID string, date time.Time, status DateStatus, updatedBy string) error
}
