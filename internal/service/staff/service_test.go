package staff

import (
	"context"
	"strings"
	"testing"

	"github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	staffs map[string]staff.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staffs: make(map[string]staff.Staff)}
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) {
	f.staffs[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	s, ok := f.staffs[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]staff.Staff, error) {
	out := make([]staff.Staff, 0, len(f.staffs))
	for _, s := range f.staffs {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, id string, updates map[string]any) error {
	s, ok := f.staffs[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	if name, ok := updates["name"].(string); ok {
		s.Name = name
	}
	if dept, ok := updates["department"].(string); ok {
		s.Department = dept
	}
	f.staffs[id] = s
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.staffs[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(f.staffs, id)
	return nil
}

func (f *fakeStaffRepo) SearchByIDSuffix(_ context.Context, suffix string) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, s := range f.staffs {
		if strings.HasSuffix(s.ID, suffix) {
			out = append(out, s)
		}
	}
	return out, nil
}

func createRequest(id string) staff.CreateStaffRequest {
	return staff.CreateStaffRequest{
		ID:     id,
		Name:   "Asha",
		Gender: "Female",
	}
}

func TestCreateStaff(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())

	created, err := svc.Create(context.Background(), createRequest("EMP001"))
	require.NoError(t, err)
	assert.Equal(t, "EMP001", created.ID)
	assert.Equal(t, "Asha", created.Name)
}

func TestCreateStaffDuplicateID(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("EMP001"))
	assert.ErrorIs(t, err, staff.ErrStaffIDExists)
}

func TestCreateStaffValidation(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())

	cases := []struct {
		name string
		req  staff.CreateStaffRequest
	}{
		{"missing id", staff.CreateStaffRequest{Name: "Asha", Gender: "Female"}},
		{"short id", createRequest("ab")},
		{"missing name", staff.CreateStaffRequest{ID: "EMP001", Gender: "Female"}},
		{"bad gender", staff.CreateStaffRequest{ID: "EMP001", Name: "Asha", Gender: "unknown"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), c.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateStaffPartial(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	name := "Asha K"
	updated, err := svc.Update(ctx, staff.UpdateStaffRequest{ID: "EMP001", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
}

func TestSearchByIDSuffix(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())
	ctx := context.Background()

	for _, id := range []string{"EMP001", "EMP101", "EMP002"} {
		_, err := svc.Create(ctx, createRequest(id))
		require.NoError(t, err)
	}

	matches, err := svc.SearchByIDSuffix(ctx, "001")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "EMP001", matches[0].ID)
}

func TestDeleteUnknownStaff(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())
	err := svc.Delete(context.Background(), "NOPE")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
