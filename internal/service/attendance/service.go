package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/geocode"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
	geocoder       geocode.Resolver
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	geocoder geocode.Resolver,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		geocoder:       geocoder,
	}
}

// Save records punch data for one staff member and date. Fields fill
// strictly forward: a value already stored is never overwritten, and a
// request contributing nothing new is rejected.
func (s *AttendanceService) Save(ctx context.Context, req attendance.SaveAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := req.ParseDate()
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	if _, err := s.staffRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrUnknownStaff
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("look up staff: %w", err)
	}

	if req.Location != nil && *req.Location != "" {
		resolved := s.resolveLocation(ctx, *req.Location)
		req.Location = &resolved
	}

	existing, err := s.attendanceRepo.GetByStaffAndDate(ctx, req.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("load attendance: %w", err)
	}

	if existing == nil {
		record, changed := ApplySave(attendance.Attendance{
			StaffID: req.ID,
			Date:    date,
			Day:     dayName(req.Day, date),
		}, req)
		if !changed {
			return attendance.AttendanceResponse{}, attendance.ErrNoNewData
		}

		created, err := s.attendanceRepo.Create(ctx, record)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("create attendance: %w", err)
		}
		return attendance.ToResponse(created), nil
	}

	merged, changed := ApplySave(*existing, req)
	if !changed {
		return attendance.AttendanceResponse{}, attendance.ErrNoNewData
	}

	if err := s.attendanceRepo.Update(ctx, merged); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("update attendance: %w", err)
	}
	return attendance.ToResponse(merged), nil
}

// ApplySave merges a save request into a punch record under the
// fill-forward rules. Reports whether the merge introduced new data.
//
// Rules: a supplied field lands only when the record does not hold it
// yet; lunchIn additionally requires lunchOut to be present; outTime is
// independent of inTime and may arrive first.
func ApplySave(record attendance.Attendance, req attendance.SaveAttendanceRequest) (attendance.Attendance, bool) {
	changed := false

	fill := func(dst **string, src *string) {
		if src == nil || *src == "" {
			return
		}
		if *dst != nil && **dst != "" {
			return
		}
		value := *src
		*dst = &value
		changed = true
	}

	fill(&record.Location, req.Location)
	fill(&record.InTime, req.InTime)
	fill(&record.LunchOut, req.LunchOut)
	if record.LunchOut != nil {
		fill(&record.LunchIn, req.LunchIn)
	}
	fill(&record.OutTime, req.OutTime)
	fill(&record.PermissionType, req.PermissionType)
	fill(&record.Hours, req.Hours)
	fill(&record.LeaveType, req.LeaveType)

	if req.IsHoliday && !record.IsHoliday {
		record.IsHoliday = true
		changed = true
	}

	return record, changed
}

// resolveLocation reverse-geocodes a "lat,lng" pair. Anything else, or
// a resolver failure, keeps the raw value.
func (s *AttendanceService) resolveLocation(ctx context.Context, location string) string {
	if !validator.IsCoordinatePair(location) {
		return location
	}

	parts := strings.SplitN(location, ",", 2)
	lat := strings.TrimSpace(parts[0])
	lng := strings.TrimSpace(parts[1])

	address, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		slog.Warn("reverse geocode failed, storing raw coordinates",
			"location", location, "error", err)
		return location
	}
	return address
}

func (s *AttendanceService) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	return toResponses(records), nil
}

func (s *AttendanceService) ListToday(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list today's attendances: %w", err)
	}
	return toResponses(records), nil
}

func (s *AttendanceService) GetByIDDate(ctx context.Context, req attendance.GetByIDDateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByStaffAndDate(ctx, req.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("load attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.ToResponse(*record), nil
}

// ListByDate returns all punch records of one calendar day, used by the
// export endpoints.
func (s *AttendanceService) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list attendances by date: %w", err)
	}
	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses
}

func dayName(requested string, date time.Time) string {
	if requested != "" {
		return requested
	}
	return date.Weekday().String()
}
