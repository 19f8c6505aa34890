package report

import (
	"testing"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func punchRecord(staffID string, day int, in, out string) attendance.Attendance {
	rec := attendance.Attendance{
		StaffID: staffID,
		Date:    time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC),
	}
	if in != "" {
		rec.InTime = strPtr(in)
	}
	if out != "" {
		rec.OutTime = strPtr(out)
	}
	return rec
}

func leaveRecord(staffID string, day int, leaveType string) attendance.Attendance {
	rec := punchRecord(staffID, day, "", "")
	rec.LeaveType = strPtr(leaveType)
	return rec
}

var testRoster = []staff.Staff{
	{ID: "EMP001", Name: "Asha"},
	{ID: "EMP002", Name: "Binod"},
	{ID: "EMP003", Name: "Chitra"},
}

func TestAggregateCountsWorkingDays(t *testing.T) {
	records := []attendance.Attendance{
		punchRecord("EMP001", 5, "09:00", "18:00"),
		punchRecord("EMP001", 6, "09:05", "17:55"),
		// In punch only, never counts as worked.
		punchRecord("EMP001", 7, "09:00", ""),
	}

	rows := Aggregate(testRoster, records, 2026, time.January)
	require.Len(t, rows, 3)

	assert.Equal(t, 2.0, rows[0].NoOfWorking)
	assert.Equal(t, 0.0, rows[0].NoOfLeaves)
	assert.Equal(t, 31, rows[0].NoOfDays)
}

func TestAggregateLeaveTakesPriorityOverPunches(t *testing.T) {
	rec := punchRecord("EMP001", 5, "09:00", "18:00")
	rec.LeaveType = strPtr("Sick Leave")

	rows := Aggregate(testRoster, []attendance.Attendance{rec}, 2026, time.January)

	assert.Equal(t, 0.0, rows[0].NoOfWorking)
	assert.Equal(t, 1.0, rows[0].NoOfLeaves)
}

func TestAggregateHalfDayLeave(t *testing.T) {
	records := []attendance.Attendance{
		leaveRecord("EMP001", 5, attendance.LeaveFirstHalf),
		leaveRecord("EMP001", 6, attendance.LeaveSecondHalf),
	}

	rows := Aggregate(testRoster, records, 2026, time.January)

	assert.Equal(t, 1.0, rows[0].NoOfWorking)
	assert.Equal(t, 1.0, rows[0].NoOfLeaves)
}

func TestAggregateSkipsHolidays(t *testing.T) {
	holidayFlag := punchRecord("EMP001", 1, "09:00", "18:00")
	holidayFlag.IsHoliday = true

	records := []attendance.Attendance{
		holidayFlag,
		leaveRecord("EMP002", 1, "National Holiday"),
		leaveRecord("EMP002", 2, "Weekly Off"),
	}

	rows := Aggregate(testRoster, records, 2026, time.January)

	assert.Equal(t, 0.0, rows[0].NoOfWorking)
	assert.Equal(t, 0.0, rows[0].NoOfLeaves)
	assert.Equal(t, 0.0, rows[1].NoOfWorking)
	assert.Equal(t, 0.0, rows[1].NoOfLeaves)
}

func TestAggregateEveryStaffGetsARow(t *testing.T) {
	rows := Aggregate(testRoster, nil, 2026, time.February)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.Equal(t, 28, row.NoOfDays)
		assert.Equal(t, 0.0, row.NoOfWorking)
		assert.Equal(t, 0.0, row.NoOfLeaves)
	}
}

func TestAggregateSortedByEmployeeID(t *testing.T) {
	roster := []staff.Staff{
		{ID: "EMP003", Name: "Chitra"},
		{ID: "EMP001", Name: "Asha"},
		{ID: "EMP002", Name: "Binod"},
	}

	rows := Aggregate(roster, nil, 2026, time.January)
	require.Len(t, rows, 3)
	assert.Equal(t, "EMP001", rows[0].EmployeeID)
	assert.Equal(t, "EMP002", rows[1].EmployeeID)
	assert.Equal(t, "EMP003", rows[2].EmployeeID)
}

func TestAggregateIdempotent(t *testing.T) {
	records := []attendance.Attendance{
		punchRecord("EMP001", 5, "09:00", "18:00"),
		leaveRecord("EMP002", 5, attendance.LeaveFirstHalf),
	}

	first := Aggregate(testRoster, records, 2026, time.January)
	second := Aggregate(testRoster, records, 2026, time.January)

	assert.Equal(t, first, second)
}

func TestAggregateIgnoresUnknownStaff(t *testing.T) {
	records := []attendance.Attendance{
		punchRecord("GHOST", 5, "09:00", "18:00"),
	}

	rows := Aggregate(testRoster, records, 2026, time.January)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.NoOfWorking)
	}
}
