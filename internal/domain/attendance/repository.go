package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for punch records.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByStaffAndDate returns nil when no record exists yet.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	// Update persists set fields only; punch fields already stored are
	// never cleared by an update.
	Update(ctx context.Context, attendance Attendance) error

	// List returns all punch records, newest date first.
	List(ctx context.Context) ([]Attendance, error)

	// ListByDate returns all punch records of one calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByMonth returns all punch records whose date falls in the
	// given month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)
}
