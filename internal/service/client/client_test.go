package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/repo/memory"
)

func strPtr(s string) *string { return &s }

func jane() CreateRequest {
	return CreateRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "555"}
}

func TestCreateRequest_Record(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{name: "minimal", req: jane()},
		{name: "with date of birth", req: func() CreateRequest {
			r := jane()
			r.DateOfBirth = strPtr("1985-03-15")
			return r
		}()},
		{name: "blank date of birth ignored", req: func() CreateRequest {
			r := jane()
			r.DateOfBirth = strPtr("")
			return r
		}()},
		{name: "bad date of birth", req: func() CreateRequest {
			r := jane()
			r.DateOfBirth = strPtr("15/03/1985")
			return r
		}(), wantErr: "dateOfBirth"},
		{name: "missing fields", req: CreateRequest{FirstName: "Jane"}, wantErr: "lastName, email, phone required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.req.Record()
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidRequest)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Email, c.Email)
			if tt.req.DateOfBirth != nil && *tt.req.DateOfBirth != "" {
				require.NotNil(t, c.DateOfBirth)
				assert.Equal(t, *tt.req.DateOfBirth, c.DateOfBirth.Format(repo.DateLayout))
			} else {
				assert.Nil(t, c.DateOfBirth)
			}
		})
	}
}

func TestCreate_NoDedup(t *testing.T) {
	ctx := context.Background()
	svc := New(memory.New())

	a, err := svc.Create(ctx, jane())
	require.NoError(t, err)
	b, err := svc.Create(ctx, jane())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store)

	c, err := svc.Create(ctx, jane())
	require.NoError(t, err)
	require.NoError(t, store.CreateAppointment(ctx, &repo.Appointment{ClientID: c.ID, Time: "09:00", Status: repo.StatusScheduled}))

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Len(t, got.Appointments, 1)

	_, err = svc.GetByID(ctx, 404)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "id 404")
}

func TestFindByIdentity(t *testing.T) {
	ctx := context.Background()
	svc := New(memory.New())

	created, err := svc.Create(ctx, jane())
	require.NoError(t, err)

	found, err := svc.FindByIdentity(ctx, "jane@x.com", "Jane", "Doe")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// exact match only
	none, err := svc.FindByIdentity(ctx, "jane@x.com", "jane", "Doe")
	require.NoError(t, err)
	assert.Nil(t, none)
}
