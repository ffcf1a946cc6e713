package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/repo/memory"
	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

func newSeeder(store repo.Store) *Seeder {
	return New(store, catalog.New(store), client.New(store), appointment.New(store, nil))
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	res, err := newSeeder(store).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Services: 6, Clients: 13, Appointments: 18}, res)

	appts, err := store.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 18)

	details, err := repo.AppointmentDetails(ctx, store, appts)
	require.NoError(t, err)

	// third booking is checkup plus whitening for the third client
	third := details[2]
	require.NotNil(t, third.Client)
	assert.Equal(t, "antonio.garcia@email.com", third.Client.Email)
	require.Len(t, third.Services, 2)
	assert.Equal(t, "Regular Checkup", third.Services[0].Service.Name)
	assert.Equal(t, "Teeth Whitening", third.Services[1].Service.Name)

	// clients are reused in turn once all thirteen have one
	assert.Equal(t, details[0].ClientID, details[13].ClientID)
	assert.Equal(t, repo.StatusCompleted, details[0].Status)
	require.NotNil(t, details[0].Notes)
	assert.Equal(t, "Regular maintenance checkup", *details[0].Notes)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := newSeeder(store)

	_, err := s.Run(ctx)
	require.NoError(t, err)

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	n, err := store.CountAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	list, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 6)
}

func TestRun_KeepsExistingRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	pre := &repo.Service{Name: "Deep Cleaning", Price: 1}
	require.NoError(t, store.CreateService(ctx, pre))

	res, err := newSeeder(store).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Services)

	got, err := store.GetService(ctx, pre.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1), got.Price)

	// the second booking is a deep cleaning and must point at the existing row
	appts, err := store.ListAppointments(ctx)
	require.NoError(t, err)
	links, err := store.LinksByAppointments(ctx, []int64{appts[1].ID})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, pre.ID, links[0].ServiceID)
}

func TestResolveServices(t *testing.T) {
	ids, err := resolveServices([]int{3, 1}, []int64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 10}, ids)

	_, err = resolveServices([]int{7}, []int64{10})
	assert.Error(t, err)

	_, err = resolveServices([]int{1}, []int64{0})
	assert.Error(t, err)
}
