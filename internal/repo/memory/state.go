package memory

import (
	"time"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

// state is one table per record type, keyed by id, plus the id sequences.
type state struct {
	clients      map[int64]repo.Client
	services     map[int64]repo.Service
	appointments map[int64]repo.Appointment
	links        map[int64]repo.AppointmentService

	clientSeq      int64
	serviceSeq     int64
	appointmentSeq int64
	linkSeq        int64
}

func newState() *state {
	return &state{
		clients:      map[int64]repo.Client{},
		services:     map[int64]repo.Service{},
		appointments: map[int64]repo.Appointment{},
		links:        map[int64]repo.AppointmentService{},
	}
}

// clone copies every table. Stored records never share pointers with
// callers, so the per-record copy is shallow.
func (s *state) clone() *state {
	c := &state{
		clients:        make(map[int64]repo.Client, len(s.clients)),
		services:       make(map[int64]repo.Service, len(s.services)),
		appointments:   make(map[int64]repo.Appointment, len(s.appointments)),
		links:          make(map[int64]repo.AppointmentService, len(s.links)),
		clientSeq:      s.clientSeq,
		serviceSeq:     s.serviceSeq,
		appointmentSeq: s.appointmentSeq,
		linkSeq:        s.linkSeq,
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.appointments {
		c.appointments[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	return c
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneClient(c repo.Client) *repo.Client {
	c.DateOfBirth = copyTime(c.DateOfBirth)
	c.Address = copyString(c.Address)
	c.EmergencyContact = copyString(c.EmergencyContact)
	c.MedicalHistory = copyString(c.MedicalHistory)
	return &c
}

func cloneService(s repo.Service) *repo.Service {
	return &s
}

func cloneAppointment(a repo.Appointment) *repo.Appointment {
	a.Notes = copyString(a.Notes)
	return &a
}

func cloneLink(l repo.AppointmentService) *repo.AppointmentService {
	return &l
}
