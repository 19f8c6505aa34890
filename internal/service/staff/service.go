package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
)

type StaffService struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

func (s *StaffService) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	_, err := s.staffRepo.GetByID(ctx, req.ID)
	if err == nil {
		return staff.StaffResponse{}, staff.ErrStaffIDExists
	}
	if !errors.Is(err, staff.ErrStaffNotFound) {
		return staff.StaffResponse{}, fmt.Errorf("check staff id: %w", err)
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		ID:          req.ID,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		Gender:      staff.Gender(req.Gender),
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("create staff: %w", err)
	}

	return toResponse(created), nil
}

func (s *StaffService) GetByID(ctx context.Context, id string) (staff.StaffResponse, error) {
	record, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return toResponse(record), nil
}

func (s *StaffService) List(ctx context.Context) ([]staff.StaffResponse, error) {
	records, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staffs: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

func (s *StaffService) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Designation != nil {
		updates["designation"] = *req.Designation
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := s.staffRepo.Update(ctx, req.ID, updates); err != nil {
			return staff.StaffResponse{}, err
		}
	}

	updated, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}

// SearchByIDSuffix matches staff whose badge id ends with the given
// digits, used by the punch kiosk's quick lookup.
func (s *StaffService) SearchByIDSuffix(ctx context.Context, suffix string) ([]staff.StaffResponse, error) {
	records, err := s.staffRepo.SearchByIDSuffix(ctx, suffix)
	if err != nil {
		return nil, fmt.Errorf("search staffs: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

func toResponse(s staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:          s.ID,
		Name:        s.Name,
		Department:  s.Department,
		Designation: s.Designation,
		Gender:      string(s.Gender),
		Phone:       s.Phone,
		Email:       s.Email,
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
