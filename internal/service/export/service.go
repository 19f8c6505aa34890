package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalizes the format query parameter, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch raw {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatXLSX):
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

var monthlyReportHeader = []string{
	"employee_id", "employee_name", "no_of_days", "no_of_working_days", "no_of_leaves",
}

var attendanceHeader = []string{
	"staff_id", "staff_name", "date", "day",
	"in_time", "lunch_out", "lunch_in", "out_time",
	"permission_type", "hours", "leave_type", "holiday", "location",
}

var leaveRequestHeader = []string{
	"request_id", "staff_id", "name", "phone", "reason",
	"date", "status", "updated_by", "created_at",
}

// MonthlyReport renders the monthly summary rows in the given format.
func MonthlyReport(rows []report.MonthlyReportRow, format Format) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.EmployeeID,
			row.EmployeeName,
			strconv.Itoa(row.NoOfDays),
			strconv.FormatFloat(row.NoOfWorking, 'f', -1, 64),
			strconv.FormatFloat(row.NoOfLeaves, 'f', -1, 64),
		})
	}
	return render(monthlyReportHeader, records, format, "Monthly Report")
}

// Attendance renders one day's punch records in the given format.
func Attendance(rows []attendance.AttendanceResponse, format Format) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.StaffID,
			row.StaffName,
			row.Date,
			row.Day,
			row.InTime,
			row.LunchOut,
			row.LunchIn,
			row.OutTime,
			row.PermissionType,
			row.Hours,
			row.LeaveType,
			strconv.FormatBool(row.Holiday),
			row.Location,
		})
	}
	return render(attendanceHeader, records, format, "Attendance")
}

// LeaveRequests renders leave requests flattened to one row per
// requested date.
func LeaveRequests(requests []leaverequest.LeaveRequestResponse, format Format) ([]byte, error) {
	var records [][]string
	for _, req := range requests {
		for _, d := range req.Dates {
			records = append(records, []string{
				req.ID,
				req.StaffID,
				req.Name,
				req.Phone,
				req.Reason,
				d.Date,
				d.Status,
				d.UpdatedBy,
				req.CreatedAt,
			})
		}
	}
	return render(leaveRequestHeader, records, format, "Leave Requests")
}

func render(header []string, records [][]string, format Format, sheetName string) ([]byte, error) {
	if format == FormatXLSX {
		return renderXLSX(header, records, sheetName)
	}
	return renderCSV(header, records)
}

func renderCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}

func renderXLSX(header []string, records [][]string, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return nil, fmt.Errorf("name worksheet: %w", err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cellName, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheetName, cellName, &row)
	}

	if err := writeRow(1, header); err != nil {
		return nil, fmt.Errorf("write worksheet header: %w", err)
	}
	for i, record := range records {
		if err := writeRow(i+2, record); err != nil {
			return nil, fmt.Errorf("write worksheet row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
