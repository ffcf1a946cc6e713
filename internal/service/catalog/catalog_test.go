package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/repo/memory"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr bool
	}{
		{name: "valid", req: CreateRequest{Name: "Cleaning", Description: "Routine", Price: 120, Duration: "60 minutes"}},
		{name: "free", req: CreateRequest{Name: "Consultation", Price: 0}},
		{name: "negative price", req: CreateRequest{Name: "Whitening", Price: -1}, wantErr: true},
		{name: "no name", req: CreateRequest{Price: 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(memory.New())
			got, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.req.Name, got.Name)
			assert.Equal(t, tt.req.Price, got.Price)
			assert.Equal(t, tt.req.Duration, got.Duration)
		})
	}
}

func TestGetByIDAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store)

	cleaning, err := svc.Create(ctx, CreateRequest{Name: "Cleaning", Price: 120})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Name: "Filling", Price: 200})
	require.NoError(t, err)
	require.NoError(t, store.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: 7, ServiceID: cleaning.ID}))

	got, err := svc.GetByID(ctx, cleaning.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", got.Name)
	require.Len(t, got.Links, 1)
	assert.Equal(t, int64(7), got.Links[0].AppointmentID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Filling", list[1].Name)
	assert.Empty(t, list[1].Links)
	assert.NotNil(t, list[1].Links)

	_, err = svc.GetByID(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByName(t *testing.T) {
	ctx := context.Background()
	svc := New(memory.New())

	created, err := svc.Create(ctx, CreateRequest{Name: "Root Canal", Price: 800})
	require.NoError(t, err)

	found, err := svc.FindByName(ctx, "Root Canal")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := svc.FindByName(ctx, "root canal")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
