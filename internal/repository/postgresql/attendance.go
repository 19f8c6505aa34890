package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.date, a.day,
	a.in_time, a.lunch_out, a.lunch_in, a.out_time,
	a.permission_type, a.hours, a.leave_type, a.is_holiday, a.location,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.StaffID,
		&a.Date,
		&a.Day,
		&a.InTime,
		&a.LunchOut,
		&a.LunchIn,
		&a.OutTime,
		&a.PermissionType,
		&a.Hours,
		&a.LeaveType,
		&a.IsHoliday,
		&a.Location,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, staff_id, date, day,
			in_time, lunch_out, lunch_in, out_time,
			permission_type, hours, leave_type, is_holiday, location,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.StaffID, a.Date, a.Day,
		a.InTime, a.LunchOut, a.LunchIn, a.OutTime,
		a.PermissionType, a.Hours, a.LeaveType, a.IsHoliday, a.Location,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.staff_id = $1 AND a.date = $2
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			day = $1,
			in_time = $2,
			lunch_out = $3,
			lunch_in = $4,
			out_time = $5,
			permission_type = $6,
			hours = $7,
			leave_type = $8,
			is_holiday = $9,
			location = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	commandTag, err := q.Exec(ctx, query,
		a.Day,
		a.InTime, a.LunchOut, a.LunchIn, a.OutTime,
		a.PermissionType, a.Hours, a.LeaveType, a.IsHoliday, a.Location,
		a.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `, s.name
		FROM attendances a
		LEFT JOIN staffs s ON s.id = a.staff_id
		ORDER BY a.date DESC, a.staff_id ASC
	`
	return r.queryWithName(ctx, query)
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `, s.name
		FROM attendances a
		LEFT JOIN staffs s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY a.staff_id ASC
	`
	return r.queryWithName(ctx, query, date)
}

func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT ` + attendanceColumns + `, s.name
		FROM attendances a
		LEFT JOIN staffs s ON s.id = a.staff_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.staff_id ASC, a.date ASC
	`
	return r.queryWithName(ctx, query, start, end)
}

func (r *attendanceRepositoryImpl) queryWithName(ctx context.Context, query string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.StaffID,
			&a.Date,
			&a.Day,
			&a.InTime,
			&a.LunchOut,
			&a.LunchIn,
			&a.OutTime,
			&a.PermissionType,
			&a.Hours,
			&a.LeaveType,
			&a.IsHoliday,
			&a.Location,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.StaffName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
