package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

func strPtr(s string) *string { return &s }

func TestStore_ClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	dob := time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)
	c := &repo.Client{
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		Email:       "juan.delacruz@email.com",
		Phone:       "+63-917-123-4567",
		DateOfBirth: &dob,
		Address:     strPtr("123 Rizal Avenue"),
	}
	require.NoError(t, s.CreateClient(ctx, c))
	assert.Equal(t, int64(1), c.ID)

	// mutating the caller's copy must not reach the store
	*c.Address = "changed"

	got, err := s.GetClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "123 Rizal Avenue", *got.Address)
	assert.True(t, dob.Equal(*got.DateOfBirth))
	assert.Nil(t, got.MedicalHistory)

	_, err = s.GetClient(ctx, 42)
	assert.True(t, repo.IsNotFound(err))
}

func TestStore_FindClientByIdentity_ExactMatch(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateClient(ctx, &repo.Client{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}))

	found, err := s.FindClientByIdentity(ctx, "jane@x.com", "Jane", "Doe")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)

	miss, err := s.FindClientByIdentity(ctx, "Jane@x.com", "Jane", "Doe")
	require.NoError(t, err)
	assert.Nil(t, miss)

	byEmail, err := s.FindClientByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
}

func TestStore_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, name := range []string{"Regular Checkup", "Deep Cleaning", "Teeth Whitening"} {
		require.NoError(t, s.CreateService(ctx, &repo.Service{Name: name, Price: 100}))
	}

	list, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, svc := range list {
		assert.Equal(t, int64(i+1), svc.ID)
	}

	found, err := s.FindServiceByName(ctx, "Deep Cleaning")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)

	byID, err := s.ServicesByIDs(ctx, []int64{3, 99})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Equal(t, "Teeth Whitening", byID[3].Name)
}

func TestStore_AppointmentLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	a := &repo.Appointment{ClientID: 1, Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Time: "09:00", Status: repo.StatusScheduled}
	require.NoError(t, s.CreateAppointment(ctx, a))
	require.NoError(t, s.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: a.ID, ServiceID: 1}))
	require.NoError(t, s.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: a.ID, ServiceID: 1}))

	links, err := s.LinksByAppointments(ctx, []int64{a.ID})
	require.NoError(t, err)
	assert.Len(t, links, 2)

	a.Status = repo.StatusCancelled
	require.NoError(t, s.UpdateAppointment(ctx, a))
	got, err := s.GetAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, repo.StatusCancelled, got.Status)

	n, err := s.DeleteLinksByAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, s.DeleteAppointment(ctx, a.ID))

	assert.True(t, repo.IsNotFound(s.DeleteAppointment(ctx, a.ID)))
	assert.True(t, repo.IsNotFound(s.UpdateAppointment(ctx, &repo.Appointment{ID: 77})))

	count, err := s.CountAppointments(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_WithTx_RollbackDiscardsEverything(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context, q repo.Queries) error {
		require.NoError(t, q.CreateClient(ctx, &repo.Client{FirstName: "A"}))
		require.NoError(t, q.CreateAppointment(ctx, &repo.Appointment{ClientID: 1}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	appts, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appts)

	// sequences roll back too
	c := &repo.Client{FirstName: "B"}
	require.NoError(t, s.CreateClient(ctx, c))
	assert.Equal(t, int64(1), c.ID)
}

func TestStore_WithTx_Commit(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.WithTx(ctx, func(ctx context.Context, q repo.Queries) error {
		c := &repo.Client{FirstName: "A"}
		if err := q.CreateClient(ctx, c); err != nil {
			return err
		}
		return q.CreateAppointment(ctx, &repo.Appointment{ClientID: c.ID, Status: repo.StatusScheduled})
	})
	require.NoError(t, err)

	appts, err := s.AppointmentsByClients(ctx, []int64{1})
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Ping(ctx), ErrClosed)
	_, err := s.ListClients(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	assert.ErrorIs(t, s.CreateClient(ctx, &repo.Client{}), context.Canceled)
	assert.ErrorIs(t, s.WithTx(ctx, func(context.Context, repo.Queries) error { return nil }), context.Canceled)
}
