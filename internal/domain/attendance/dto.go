package attendance

import (
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type SaveAttendanceRequest struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Day            string  `json:"day"`
	InTime         *string `json:"inTime,omitempty"`
	LunchOut       *string `json:"lunchOut,omitempty"`
	LunchIn        *string `json:"lunchIn,omitempty"`
	OutTime        *string `json:"outTime,omitempty"`
	PermissionType *string `json:"permissionType,omitempty"`
	Hours          *string `json:"hours,omitempty"`
	LeaveType      *string `json:"leaveType,omitempty"`
	IsHoliday      bool    `json:"holiday,omitempty"`
	Location       *string `json:"location,omitempty"`
}

func (r *SaveAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
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

	for field, value := range map[string]*string{
		"inTime":   r.InTime,
		"lunchOut": r.LunchOut,
		"lunchIn":  r.LunchIn,
		"outTime":  r.OutTime,
	} {
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM 24h format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GetByIDDateRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *GetByIDDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string `json:"id"`
	StaffID        string `json:"staff_id"`
	StaffName      string `json:"staff_name,omitempty"`
	Date           string `json:"date"`
	Day            string `json:"day"`
	InTime         string `json:"inTime"`
	LunchOut       string `json:"lunchOut"`
	LunchIn        string `json:"lunchIn"`
	OutTime        string `json:"outTime"`
	PermissionType string `json:"permissionType"`
	Hours          string `json:"hours"`
	LeaveType      string `json:"leaveType"`
	Holiday        bool   `json:"holiday"`
	Location       string `json:"location"`
}

// ToResponse flattens nil punch fields to empty strings for the UI.
func ToResponse(att Attendance) AttendanceResponse {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	var staffName string
	if att.StaffName != nil {
		staffName = *att.StaffName
	}

	return AttendanceResponse{
		ID:             att.ID,
		StaffID:        att.StaffID,
		StaffName:      staffName,
		Date:           att.Date.Format("2006-01-02"),
		Day:            att.Day,
		InTime:         deref(att.InTime),
		LunchOut:       deref(att.LunchOut),
		LunchIn:        deref(att.LunchIn),
		OutTime:        deref(att.OutTime),
		PermissionType: deref(att.PermissionType),
		Hours:          deref(att.Hours),
		LeaveType:      deref(att.LeaveType),
		Holiday:        att.IsHoliday,
		Location:       deref(att.Location),
	}
}

// ParseDate returns the record date of the request.
func (r *SaveAttendanceRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
