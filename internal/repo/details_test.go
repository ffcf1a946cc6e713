package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/repo/memory"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-01-10", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{in: " 2025-01-10 ", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{in: "1985-03-15T00:00:00Z", want: time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2025-13-01", wantErr: true},
		{in: "10/01/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := repo.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, repo.StatusScheduled.Valid())
	assert.True(t, repo.StatusCompleted.Valid())
	assert.True(t, repo.StatusCancelled.Valid())
	assert.False(t, repo.Status("").Valid())
	assert.False(t, repo.Status("Scheduled").Valid())
	assert.False(t, repo.Status("pending").Valid())
}

func TestAppointmentDetails(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	client := &repo.Client{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "555"}
	require.NoError(t, s.CreateClient(ctx, client))
	checkup := &repo.Service{Name: "Regular Checkup", Price: 1800, Duration: "45-60 min"}
	require.NoError(t, s.CreateService(ctx, checkup))

	withLinks := &repo.Appointment{ClientID: client.ID, Time: "09:00", Status: repo.StatusScheduled}
	require.NoError(t, s.CreateAppointment(ctx, withLinks))
	require.NoError(t, s.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: withLinks.ID, ServiceID: checkup.ID}))
	require.NoError(t, s.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: withLinks.ID, ServiceID: 99}))

	dangling := &repo.Appointment{ClientID: 404, Time: "10:00", Status: repo.StatusScheduled}
	require.NoError(t, s.CreateAppointment(ctx, dangling))

	appts, err := s.ListAppointments(ctx)
	require.NoError(t, err)

	details, err := repo.AppointmentDetails(ctx, s, appts)
	require.NoError(t, err)
	require.Len(t, details, 2)

	first := details[0]
	require.NotNil(t, first.Client)
	assert.Equal(t, "jane@x.com", first.Client.Email)
	require.Len(t, first.Services, 2)
	assert.Equal(t, "Regular Checkup", first.Services[0].Service.Name)
	assert.Nil(t, first.Services[1].Service)

	assert.Nil(t, details[1].Client)
	assert.NotNil(t, details[1].Services)
	assert.Empty(t, details[1].Services)

	_, err = repo.AppointmentDetailByID(ctx, s, 999)
	assert.True(t, repo.IsNotFound(err))
}

func TestClientAndServiceDetails(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	a := &repo.Client{FirstName: "A"}
	b := &repo.Client{FirstName: "B"}
	require.NoError(t, s.CreateClient(ctx, a))
	require.NoError(t, s.CreateClient(ctx, b))
	svc := &repo.Service{Name: "Deep Cleaning", Price: 5600}
	require.NoError(t, s.CreateService(ctx, svc))

	appt := &repo.Appointment{ClientID: a.ID, Status: repo.StatusScheduled}
	require.NoError(t, s.CreateAppointment(ctx, appt))
	require.NoError(t, s.CreateAppointmentService(ctx, &repo.AppointmentService{AppointmentID: appt.ID, ServiceID: svc.ID}))

	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	cd, err := repo.ClientDetails(ctx, s, clients)
	require.NoError(t, err)
	require.Len(t, cd, 2)
	assert.Len(t, cd[0].Appointments, 1)
	assert.NotNil(t, cd[1].Appointments)
	assert.Empty(t, cd[1].Appointments)

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	sd, err := repo.ServiceDetails(ctx, s, services)
	require.NoError(t, err)
	require.Len(t, sd, 1)
	require.Len(t, sd[0].Links, 1)
	assert.Equal(t, appt.ID, sd[0].Links[0].AppointmentID)
}
