package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

// queries implements repo.Queries directly on a state. Callers hold the
// store lock or own the state exclusively.
type queries struct {
	st *state
}

var _ repo.Queries = (*queries)(nil)

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, repo.ErrNotFound)
}

func (q *queries) CreateClient(_ context.Context, c *repo.Client) error {
	q.st.clientSeq++
	c.ID = q.st.clientSeq
	q.st.clients[c.ID] = *cloneClient(*c)
	return nil
}

func (q *queries) GetClient(_ context.Context, id int64) (*repo.Client, error) {
	c, ok := q.st.clients[id]
	if !ok {
		return nil, notFound("client", id)
	}
	return cloneClient(c), nil
}

func (q *queries) ListClients(_ context.Context) ([]*repo.Client, error) {
	out := make([]*repo.Client, 0, len(q.st.clients))
	for _, id := range sortedKeys(q.st.clients) {
		out = append(out, cloneClient(q.st.clients[id]))
	}
	return out, nil
}

func (q *queries) ClientsByIDs(_ context.Context, ids []int64) (map[int64]*repo.Client, error) {
	out := make(map[int64]*repo.Client, len(ids))
	for _, id := range ids {
		if c, ok := q.st.clients[id]; ok {
			out[id] = cloneClient(c)
		}
	}
	return out, nil
}

func (q *queries) FindClientByIdentity(_ context.Context, email, firstName, lastName string) (*repo.Client, error) {
	for _, id := range sortedKeys(q.st.clients) {
		c := q.st.clients[id]
		if c.Email == email && c.FirstName == firstName && c.LastName == lastName {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (q *queries) FindClientByEmail(_ context.Context, email string) (*repo.Client, error) {
	for _, id := range sortedKeys(q.st.clients) {
		if c := q.st.clients[id]; c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (q *queries) CreateService(_ context.Context, s *repo.Service) error {
	q.st.serviceSeq++
	s.ID = q.st.serviceSeq
	q.st.services[s.ID] = *s
	return nil
}

func (q *queries) GetService(_ context.Context, id int64) (*repo.Service, error) {
	s, ok := q.st.services[id]
	if !ok {
		return nil, notFound("service", id)
	}
	return cloneService(s), nil
}

func (q *queries) ListServices(_ context.Context) ([]*repo.Service, error) {
	out := make([]*repo.Service, 0, len(q.st.services))
	for _, id := range sortedKeys(q.st.services) {
		out = append(out, cloneService(q.st.services[id]))
	}
	return out, nil
}

func (q *queries) ServicesByIDs(_ context.Context, ids []int64) (map[int64]*repo.Service, error) {
	out := make(map[int64]*repo.Service, len(ids))
	for _, id := range ids {
		if s, ok := q.st.services[id]; ok {
			out[id] = cloneService(s)
		}
	}
	return out, nil
}

func (q *queries) FindServiceByName(_ context.Context, name string) (*repo.Service, error) {
	for _, id := range sortedKeys(q.st.services) {
		if s := q.st.services[id]; s.Name == name {
			return cloneService(s), nil
		}
	}
	return nil, nil
}

func (q *queries) CreateAppointment(_ context.Context, a *repo.Appointment) error {
	q.st.appointmentSeq++
	a.ID = q.st.appointmentSeq
	q.st.appointments[a.ID] = *cloneAppointment(*a)
	return nil
}

func (q *queries) GetAppointment(_ context.Context, id int64) (*repo.Appointment, error) {
	a, ok := q.st.appointments[id]
	if !ok {
		return nil, notFound("appointment", id)
	}
	return cloneAppointment(a), nil
}

func (q *queries) ListAppointments(_ context.Context) ([]*repo.Appointment, error) {
	out := make([]*repo.Appointment, 0, len(q.st.appointments))
	for _, id := range sortedKeys(q.st.appointments) {
		out = append(out, cloneAppointment(q.st.appointments[id]))
	}
	return out, nil
}

func (q *queries) AppointmentsByClients(_ context.Context, clientIDs []int64) ([]*repo.Appointment, error) {
	want := idSet(clientIDs)
	var out []*repo.Appointment
	for _, id := range sortedKeys(q.st.appointments) {
		a := q.st.appointments[id]
		if _, ok := want[a.ClientID]; ok {
			out = append(out, cloneAppointment(a))
		}
	}
	return out, nil
}

func (q *queries) UpdateAppointment(_ context.Context, a *repo.Appointment) error {
	if _, ok := q.st.appointments[a.ID]; !ok {
		return notFound("appointment", a.ID)
	}
	q.st.appointments[a.ID] = *cloneAppointment(*a)
	return nil
}

func (q *queries) DeleteAppointment(_ context.Context, id int64) error {
	if _, ok := q.st.appointments[id]; !ok {
		return notFound("appointment", id)
	}
	delete(q.st.appointments, id)
	return nil
}

func (q *queries) CountAppointments(_ context.Context) (int, error) {
	return len(q.st.appointments), nil
}

func (q *queries) CreateAppointmentService(_ context.Context, l *repo.AppointmentService) error {
	q.st.linkSeq++
	l.ID = q.st.linkSeq
	q.st.links[l.ID] = *l
	return nil
}

func (q *queries) LinksByAppointments(_ context.Context, appointmentIDs []int64) ([]*repo.AppointmentService, error) {
	want := idSet(appointmentIDs)
	var out []*repo.AppointmentService
	for _, id := range sortedKeys(q.st.links) {
		l := q.st.links[id]
		if _, ok := want[l.AppointmentID]; ok {
			out = append(out, cloneLink(l))
		}
	}
	return out, nil
}

func (q *queries) LinksByServices(_ context.Context, serviceIDs []int64) ([]*repo.AppointmentService, error) {
	want := idSet(serviceIDs)
	var out []*repo.AppointmentService
	for _, id := range sortedKeys(q.st.links) {
		l := q.st.links[id]
		if _, ok := want[l.ServiceID]; ok {
			out = append(out, cloneLink(l))
		}
	}
	return out, nil
}

func (q *queries) DeleteLinksByAppointment(_ context.Context, appointmentID int64) (int64, error) {
	var n int64
	for id, l := range q.st.links {
		if l.AppointmentID == appointmentID {
			delete(q.st.links, id)
			n++
		}
	}
	return n, nil
}
