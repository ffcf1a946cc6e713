package repo

import (
	"context"
	"fmt"
	"sort"
)

// AppointmentDetails resolves the client and services of each appointment
// with one lookup per table. Output order follows appts.
func AppointmentDetails(ctx context.Context, q Queries, appts []*Appointment) ([]*AppointmentDetail, error) {
	if len(appts) == 0 {
		return []*AppointmentDetail{}, nil
	}

	apptIDs := make([]int64, 0, len(appts))
	clientIDs := make([]int64, 0, len(appts))
	for _, a := range appts {
		apptIDs = append(apptIDs, a.ID)
		clientIDs = append(clientIDs, a.ClientID)
	}

	clients, err := q.ClientsByIDs(ctx, uniqueIDs(clientIDs))
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	links, err := q.LinksByAppointments(ctx, apptIDs)
	if err != nil {
		return nil, fmt.Errorf("load service links: %w", err)
	}

	serviceIDs := make([]int64, 0, len(links))
	byAppt := make(map[int64][]*AppointmentService, len(appts))
	for _, l := range links {
		serviceIDs = append(serviceIDs, l.ServiceID)
		byAppt[l.AppointmentID] = append(byAppt[l.AppointmentID], l)
	}

	services, err := q.ServicesByIDs(ctx, uniqueIDs(serviceIDs))
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}

	out := make([]*AppointmentDetail, 0, len(appts))
	for _, a := range appts {
		d := &AppointmentDetail{
			Appointment: *a,
			Client:      clients[a.ClientID],
			Services:    make([]ServiceLink, 0, len(byAppt[a.ID])),
		}
		for _, l := range byAppt[a.ID] {
			d.Services = append(d.Services, ServiceLink{ID: l.ID, Service: services[l.ServiceID]})
		}
		out = append(out, d)
	}
	return out, nil
}

// AppointmentDetailByID loads one populated appointment.
func AppointmentDetailByID(ctx context.Context, q Queries, id int64) (*AppointmentDetail, error) {
	a, err := q.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := AppointmentDetails(ctx, q, []*Appointment{a})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// ClientDetails attaches each client's appointments.
func ClientDetails(ctx context.Context, q Queries, clients []*Client) ([]*ClientDetail, error) {
	ids := make([]int64, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}

	var appts []*Appointment
	if len(ids) > 0 {
		var err error
		if appts, err = q.AppointmentsByClients(ctx, ids); err != nil {
			return nil, fmt.Errorf("load appointments: %w", err)
		}
	}

	byClient := make(map[int64][]*Appointment, len(clients))
	for _, a := range appts {
		byClient[a.ClientID] = append(byClient[a.ClientID], a)
	}

	out := make([]*ClientDetail, 0, len(clients))
	for _, c := range clients {
		list := byClient[c.ID]
		if list == nil {
			list = []*Appointment{}
		}
		out = append(out, &ClientDetail{Client: *c, Appointments: list})
	}
	return out, nil
}

// ServiceDetails attaches each service's appointment links.
func ServiceDetails(ctx context.Context, q Queries, services []*Service) ([]*ServiceDetail, error) {
	ids := make([]int64, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}

	var links []*AppointmentService
	if len(ids) > 0 {
		var err error
		if links, err = q.LinksByServices(ctx, ids); err != nil {
			return nil, fmt.Errorf("load service links: %w", err)
		}
	}

	byService := make(map[int64][]*AppointmentService, len(services))
	for _, l := range links {
		byService[l.ServiceID] = append(byService[l.ServiceID], l)
	}

	out := make([]*ServiceDetail, 0, len(services))
	for _, s := range services {
		list := byService[s.ID]
		if list == nil {
			list = []*AppointmentService{}
		}
		out = append(out, &ServiceDetail{Service: *s, Links: list})
	}
	return out, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
