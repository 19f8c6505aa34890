package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leaverequest.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create inserts the request header and one row per requested date.
// Callers run it inside WithTransaction so the two inserts commit
// together.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leaverequest.LeaveRequest) (leaverequest.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, staff_id, name, phone, reason,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.StaffID, request.Name, request.Phone, request.Reason,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leaverequest.LeaveRequest{}, err
	}

	dateQuery := `
		INSERT INTO leave_request_dates (request_id, date, status, updated_by)
		VALUES ($1, $2, $3, $4)
	`
	for _, d := range request.Dates {
		if _, err := q.Exec(ctx, dateQuery, request.ID, d.Date, d.Status, d.UpdatedBy); err != nil {
			return leaverequest.LeaveRequest{}, err
		}
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leaverequest.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, name, phone, reason, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr leaverequest.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID,
		&lr.StaffID,
		&lr.Name,
		&lr.Phone,
		&lr.Reason,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leaverequest.LeaveRequest{}, leaverequest.ErrLeaveRequestNotFound
		}
		return leaverequest.LeaveRequest{}, err
	}

	dateQuery := `
		SELECT date, status, updated_by
		FROM leave_request_dates
		WHERE request_id = $1
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, dateQuery, id)
	if err != nil {
		return leaverequest.LeaveRequest{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var d leaverequest.LeaveDate
		if err := rows.Scan(&d.Date, &d.Status, &d.UpdatedBy); err != nil {
			return leaverequest.LeaveRequest{}, err
		}
		lr.Dates = append(lr.Dates, d)
	}

	return lr, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leaverequest.DateStatus) ([]leaverequest.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// A request appears under a status when any of its dates carries it;
	// all of its dates are returned regardless.
	query := `
		SELECT lr.id, lr.staff_id, lr.name, lr.phone, lr.reason, lr.created_at, lr.updated_at,
			   d.date, d.status, d.updated_by
		FROM leave_requests lr
		INNER JOIN leave_request_dates d ON d.request_id = lr.id
		WHERE lr.id IN (
			SELECT request_id FROM leave_request_dates WHERE status = $1
		)
		ORDER BY lr.created_at DESC, lr.id, d.date ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leaverequest.LeaveRequest
	index := make(map[string]int)
	for rows.Next() {
		var lr leaverequest.LeaveRequest
		var d leaverequest.LeaveDate
		err := rows.Scan(
			&lr.ID,
			&lr.StaffID,
			&lr.Name,
			&lr.Phone,
			&lr.Reason,
			&lr.CreatedAt,
			&lr.UpdatedAt,
			&d.Date,
			&d.Status,
			&d.UpdatedBy,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[lr.ID]
		if !ok {
			i = len(requests)
			index[lr.ID] = i
			requests = append(requests, lr)
		}
		requests[i].Dates = append(requests[i].Dates, d)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) UpdateDateStatus(ctx context.Context, requestID string, date time.Time, status leaverequest.DateStatus, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_request_dates
		SET status = $1, updated_by = $2
		WHERE request_id = $3 AND date = $4
	`

	commandTag, err := q.Exec(ctx, query, status, updatedBy, requestID, date)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leaverequest.ErrLeaveDateNotFound
	}

	touch := `
		UPDATE leave_requests SET updated_at = NOW() WHERE id = $1
	`
	if _, err := q.Exec(ctx, touch, requestID); err != nil {
		return err
	}

	return nil
}
