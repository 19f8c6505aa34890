package leaverequest

import (
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	StaffID string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Reason  string   `json:"reason"`
	Dates   []string `json:"dates"` // YYYY-MM-DD each
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be 10-13 digits",
		})
	}

	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "dates",
			Message: "at least one date is required",
		})
	}
	for _, d := range r.Dates {
		if _, valid := validator.IsValidDate(d); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dates",
				Message: "dates must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	RequestID string `json:"requestId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "requestId",
			Message: "requestId is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if validator.IsEmpty(r.UpdatedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "updatedBy",
			Message: "updatedBy is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveDateResponse struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy"`
}

type LeaveRequestResponse struct {
	ID        string              `json:"id"`
	StaffID   string              `json:"staff_id"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	Reason    string              `json:"reason"`
	Dates     []LeaveDateResponse `json:"dates"`
	CreatedAt string              `json:"created_at"`
}

func ToResponse(req LeaveRequest) LeaveRequestResponse {
	dates := make([]LeaveDateResponse, 0, len(req.Dates))
	for _, d := range req.Dates {
		dates = append(dates, LeaveDateResponse{
			Date:      d.Date.Format("2006-01-02"),
			Status:    string(d.Status),
			UpdatedBy: d.UpdatedBy,
		})
	}

	return LeaveRequestResponse{
		ID:        req.ID,
		StaffID:   req.StaffID,
		Name:      req.Name,
		Phone:     req.Phone,
		Reason:    req.Reason,
		Dates:     dates,
		CreatedAt: req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
