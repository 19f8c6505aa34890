package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoNewData          = errors.New("no new data to update")
	ErrFutureDate         = errors.New("attendance cannot be recorded for a future date")
	ErrUnknownStaff       = errors.New("no staff with this id")
)
