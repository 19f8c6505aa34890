package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestMonthlyReportCSV(t *testing.T) {
	rows := []report.MonthlyReportRow{
		{EmployeeID: "EMP001", EmployeeName: "Asha", NoOfDays: 31, NoOfWorking: 20.5, NoOfLeaves: 1.5},
		{EmployeeID: "EMP002", EmployeeName: "Binod", NoOfDays: 31, NoOfWorking: 22, NoOfLeaves: 0},
	}

	data, err := MonthlyReport(rows, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, monthlyReportHeader, records[0])
	assert.Equal(t, []string{"EMP001", "Asha", "31", "20.5", "1.5"}, records[1])
	assert.Equal(t, []string{"EMP002", "Binod", "31", "22", "0"}, records[2])
}

func TestMonthlyReportXLSX(t *testing.T) {
	rows := []report.MonthlyReportRow{
		{EmployeeID: "EMP001", EmployeeName: "Asha", NoOfDays: 31, NoOfWorking: 20, NoOfLeaves: 2},
	}

	data, err := MonthlyReport(rows, FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Monthly Report")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, monthlyReportHeader, got[0])
	assert.Equal(t, []string{"EMP001", "Asha", "31", "20", "2"}, got[1])
}

func TestAttendanceCSV(t *testing.T) {
	rows := []attendance.AttendanceResponse{
		{
			StaffID:   "EMP001",
			StaffName: "Asha",
			Date:      "2026-03-02",
			Day:       "Monday",
			InTime:    "09:00",
			OutTime:   "18:00",
			Location:  "MG Road, Bengaluru",
		},
	}

	data, err := Attendance(rows, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, attendanceHeader, records[0])
	assert.Equal(t, "EMP001", records[1][0])
	assert.Equal(t, "09:00", records[1][4])
	assert.Equal(t, "false", records[1][11])
}

func TestLeaveRequestsCSVFlattensDates(t *testing.T) {
	requests := []leaverequest.LeaveRequestResponse{
		{
			ID:        "req-1",
			StaffID:   "EMP001",
			Name:      "Asha",
			Reason:    "family function",
			CreatedAt: "2026-05-28 10:00:00",
			Dates: []leaverequest.LeaveDateResponse{
				{Date: "2026-06-01", Status: "approved", UpdatedBy: "approver"},
				{Date: "2026-06-02", Status: "pending"},
			},
		},
	}

	data, err := LeaveRequests(requests, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, leaveRequestHeader, records[0])
	assert.Equal(t, "2026-06-01", records[1][5])
	assert.Equal(t, "approved", records[1][6])
	assert.Equal(t, "2026-06-02", records[2][5])
	assert.Equal(t, "pending", records[2][6])
}

func TestEmptyExportStillHasHeader(t *testing.T) {
	data, err := MonthlyReport(nil, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, monthlyReportHeader, records[0])
}
