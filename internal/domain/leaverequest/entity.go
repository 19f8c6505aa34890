package leaverequest

import "time"

type DateStatus string

const (
	StatusPending  DateStatus = "pending"
	StatusApproved DateStatus = "approved"
	StatusRejected DateStatus = "rejected"
)

// LeaveDate is one requested calendar day inside a leave request. Each
// date is statused independently by an approver.
type LeaveDate struct {
	Date      time.Time
	Status    DateStatus
	UpdatedBy string
}

// LeaveRequest is a free-form leave submission spanning one or more
// dates.
type LeaveRequest struct {
	ID        string
	StaffID   string
	Name      string
	Phone     string
	Reason    string
	Dates     []LeaveDate
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStatus reports whether any date of the request carries the given
// status. Requests appear under a status tab when at least one of
// their dates matches.
func (r LeaveRequest) HasStatus(status DateStatus) bool {
	for _, d := range r.Dates {
		if d.Status == status {
			return true
		}
	}
	return false
}
