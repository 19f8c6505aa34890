package staff

import "context"

// StaffRepository defines data access methods for the staff roster.
type StaffRepository interface {
	Create(ctx context.Context, staff Staff) (Staff, error)

	GetByID(ctx context.Context, id string) (Staff, error)

	// List returns the full roster ordered by id.
	List(ctx context.Context) ([]Staff, error)

	// Update applies the given column/value pairs. Returns
	// ErrStaffNotFound when no row matches.
	Update(ctx context.Context, id string, updates map[string]any) error

	Delete(ctx context.Context, id string) error

	// SearchByIDSuffix returns staff whose id ends with the given digits.
	SearchByIDSuffix(ctx context.Context, suffix string) ([]Staff, error)
}
