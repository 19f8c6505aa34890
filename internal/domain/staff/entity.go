package staff

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Staff is one roster entry. The ID is human-assigned (badge number),
// not generated.
type Staff struct {
	ID          string
	Name        string
	Department  string
	Designation string
	Gender      Gender
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
