package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staffs (
			id, name, department, designation, gender, phone, email,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Department, s.Designation, s.Gender, s.Phone, s.Email,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return staff.Staff{}, err
	}

	return s, nil
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department, designation, gender, phone, email, created_at, updated_at
		FROM staffs
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Department,
		&s.Designation,
		&s.Gender,
		&s.Phone,
		&s.Email,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}

	return s, nil
}

func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department, designation, gender, phone, email, created_at, updated_at
		FROM staffs
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffs []staff.Staff
	for rows.Next() {
		var s staff.Staff
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Department,
			&s.Designation,
			&s.Gender,
			&s.Phone,
			&s.Email,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		staffs = append(staffs, s)
	}

	return staffs, rows.Err()
}

func (r *staffRepositoryImpl) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]any, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE staffs SET %s WHERE id = $%d RETURNING id",
		strings.Join(setClauses, ", "), i)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return err
	}

	return nil
}

func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM staffs
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func (r *staffRepositoryImpl) SearchByIDSuffix(ctx context.Context, suffix string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department, designation, gender, phone, email, created_at, updated_at
		FROM staffs
		WHERE id LIKE '%' || $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, suffix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffs []staff.Staff
	for rows.Next() {
		var s staff.Staff
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Department,
			&s.Designation,
			&s.Gender,
			&s.Phone,
			&s.Email,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		staffs = append(staffs, s)
	}

	return staffs, rows.Err()
}
