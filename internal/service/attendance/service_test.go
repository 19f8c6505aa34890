package attendance

import (
	"testing"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func emptyRecord() attendance.Attendance {
	return attendance.Attendance{
		StaffID: "EMP001",
		Date:    time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Day:     "Monday",
	}
}

func TestApplySaveFillsEmptyFields(t *testing.T) {
	merged, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		InTime:   strPtr("09:00"),
		Location: strPtr("12.97, 77.59"),
	})

	require.True(t, changed)
	assert.Equal(t, "09:00", *merged.InTime)
	assert.Equal(t, "12.97, 77.59", *merged.Location)
	assert.Nil(t, merged.OutTime)
}

func TestApplySaveNeverOverwrites(t *testing.T) {
	record := emptyRecord()
	record.InTime = strPtr("09:00")

	merged, changed := ApplySave(record, attendance.SaveAttendanceRequest{
		InTime: strPtr("10:30"),
	})

	assert.False(t, changed, "a second in punch is not new data")
	assert.Equal(t, "09:00", *merged.InTime)
}

func TestApplySaveDuplicateEverythingIsNoNewData(t *testing.T) {
	record := emptyRecord()
	record.InTime = strPtr("09:00")
	record.OutTime = strPtr("18:00")
	record.Location = strPtr("Head Office")

	_, changed := ApplySave(record, attendance.SaveAttendanceRequest{
		InTime:   strPtr("09:00"),
		OutTime:  strPtr("18:00"),
		Location: strPtr("Head Office"),
	})

	assert.False(t, changed)
}

func TestApplySaveOutBeforeIn(t *testing.T) {
	// Out punch may land before any in punch exists; the fields are
	// independent.
	merged, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		OutTime: strPtr("18:00"),
	})

	require.True(t, changed)
	assert.Nil(t, merged.InTime)
	assert.Equal(t, "18:00", *merged.OutTime)

	merged, changed = ApplySave(merged, attendance.SaveAttendanceRequest{
		InTime: strPtr("09:00"),
	})
	require.True(t, changed)
	assert.Equal(t, "09:00", *merged.InTime)
	assert.Equal(t, "18:00", *merged.OutTime)
}

func TestApplySaveLunchInRequiresLunchOut(t *testing.T) {
	_, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		LunchIn: strPtr("13:30"),
	})
	assert.False(t, changed, "lunch-in without a lunch-out is not accepted")

	// Both in the same request: lunch-out lands first, lunch-in follows.
	merged, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		LunchOut: strPtr("12:30"),
		LunchIn:  strPtr("13:30"),
	})
	require.True(t, changed)
	assert.Equal(t, "12:30", *merged.LunchOut)
	assert.Equal(t, "13:30", *merged.LunchIn)
}

func TestApplySaveHolidayFlag(t *testing.T) {
	merged, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		IsHoliday: true,
	})
	require.True(t, changed)
	assert.True(t, merged.IsHoliday)

	_, changed = ApplySave(merged, attendance.SaveAttendanceRequest{
		IsHoliday: true,
	})
	assert.False(t, changed, "re-flagging a holiday is not new data")
}

func TestApplySaveLeaveAndPermission(t *testing.T) {
	merged, changed := ApplySave(emptyRecord(), attendance.SaveAttendanceRequest{
		LeaveType:      strPtr(attendance.LeaveFirstHalf),
		PermissionType: strPtr("personal"),
		Hours:          strPtr("2"),
	})

	require.True(t, changed)
	assert.Equal(t, attendance.LeaveFirstHalf, *merged.LeaveType)
	assert.Equal(t, "personal", *merged.PermissionType)
	assert.Equal(t, "2", *merged.Hours)
}

func TestSaveRequestValidation(t *testing.T) {
	cases := []struct {
		name string
		req  attendance.SaveAttendanceRequest
	}{
		{"missing id", attendance.SaveAttendanceRequest{Date: "2026-03-02"}},
		{"missing date", attendance.SaveAttendanceRequest{ID: "EMP001"}},
		{"bad date", attendance.SaveAttendanceRequest{ID: "EMP001", Date: "02-03-2026"}},
		{"bad clock time", attendance.SaveAttendanceRequest{ID: "EMP001", Date: "2026-03-02", InTime: strPtr("25:00")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.req.Validate())
		})
	}

	valid := attendance.SaveAttendanceRequest{ID: "EMP001", Date: "2026-03-02", InTime: strPtr("09:00")}
	assert.NoError(t, valid.Validate())
}
