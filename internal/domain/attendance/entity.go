package attendance

import "time"

// Leave type values recognized by the monthly aggregator.
const (
	LeaveFirstHalf  = "firstHalf"
	LeaveSecondHalf = "secondHalf"
)

// HolidayNames are leave-type values that mark a record as a named
// holiday: the day counts toward neither working days nor leaves.
var HolidayNames = []string{
	"Holiday",
	"National Holiday",
	"Festival Holiday",
	"Weekly Off",
}

// Attendance is one punch record for a staff member on one calendar
// date. Punch fields hold "HH:MM" 24h strings and are filled strictly
// forward, never overwritten once set.
type Attendance struct {
	ID             string
	StaffID        string
	Date           time.Time
	Day            string
	InTime         *string
	LunchOut       *string
	LunchIn        *string
	OutTime        *string
	PermissionType *string
	Hours          *string
	LeaveType      *string
	IsHoliday      bool
	Location       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	StaffName *string
}
