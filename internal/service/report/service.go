package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/report"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
)

type ReportService struct {
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(staffRepo staff.StaffRepository, attendanceRepo attendance.AttendanceRepository) *ReportService {
	return &ReportService{staffRepo: staffRepo, attendanceRepo: attendanceRepo}
}

// Monthly builds the attendance summary for one month across the whole
// roster.
func (s *ReportService) Monthly(ctx context.Context, year int, month time.Month) ([]report.MonthlyReportRow, error) {
	staffs, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staffs: %w", err)
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list month attendances: %w", err)
	}

	return Aggregate(staffs, records, year, month), nil
}

// Aggregate tallies working days and leaves per staff member from one
// month of punch records. Per record: a holiday contributes nothing; a
// half-day leave adds 0.5 to both tallies; any other leave type adds a
// full leave even when punches exist; otherwise a day with both in and
// out punches counts as worked. Every roster member gets a row, and
// rows come back sorted by employee id.
func Aggregate(staffs []staff.Staff, records []attendance.Attendance, year int, month time.Month) []report.MonthlyReportRow {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	type tally struct {
		working float64
		leaves  float64
	}
	tallies := make(map[string]*tally, len(staffs))
	for _, s := range staffs {
		tallies[s.ID] = &tally{}
	}

	for _, rec := range records {
		t, ok := tallies[rec.StaffID]
		if !ok {
			// Punches from staff no longer on the roster are ignored.
			continue
		}

		switch {
		case isHoliday(rec):
		case isHalfDayLeave(rec):
			t.working += 0.5
			t.leaves += 0.5
		case rec.LeaveType != nil && *rec.LeaveType != "":
			t.leaves++
		case hasPunch(rec.InTime) && hasPunch(rec.OutTime):
			t.working++
		}
	}

	rows := make([]report.MonthlyReportRow, 0, len(staffs))
	for _, s := range staffs {
		t := tallies[s.ID]
		rows = append(rows, report.MonthlyReportRow{
			EmployeeID:   s.ID,
			EmployeeName: s.Name,
			NoOfDays:     daysInMonth,
			NoOfWorking:  t.working,
			NoOfLeaves:   t.leaves,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return rows
}

func isHoliday(rec attendance.Attendance) bool {
	if rec.IsHoliday {
		return true
	}
	if rec.LeaveType == nil {
		return false
	}
	for _, name := range attendance.HolidayNames {
		if *rec.LeaveType == name {
			return true
		}
	}
	return false
}

func isHalfDayLeave(rec attendance.Attendance) bool {
	if rec.LeaveType == nil {
		return false
	}
	return *rec.LeaveType == attendance.LeaveFirstHalf || *rec.LeaveType == attendance.LeaveSecondHalf
}

func hasPunch(value *string) bool {
	return value != nil && *value != ""
}
