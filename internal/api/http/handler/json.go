package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

// ---------------------------------------------------------------------------
// Request bodies
// ---------------------------------------------------------------------------

type clientBody struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	MedicalHistory   *string `json:"medicalHistory"`
}

func (b *clientBody) request() *client.CreateRequest {
	if b == nil {
		return nil
	}
	return &client.CreateRequest{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		DateOfBirth:      b.DateOfBirth,
		Address:          b.Address,
		EmergencyContact: b.EmergencyContact,
		MedicalHistory:   b.MedicalHistory,
	}
}

// serviceIDs tells an omitted or null "serviceIds" apart from an empty
// array.
type serviceIDs struct {
	Set bool
	IDs []int64
}

func (s *serviceIDs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = serviceIDs{}
		return nil
	}
	ids := []int64{}
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = serviceIDs{Set: true, IDs: ids}
	return nil
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(repo.DateLayout)
	return &s
}

type clientJSON struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	MedicalHistory   *string `json:"medicalHistory"`
}

func toClientJSON(c *repo.Client) *clientJSON {
	if c == nil {
		return nil
	}
	return &clientJSON{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		DateOfBirth:      formatDate(c.DateOfBirth),
		Address:          c.Address,
		EmergencyContact: c.EmergencyContact,
		MedicalHistory:   c.MedicalHistory,
	}
}

type clientDetailJSON struct {
	clientJSON
	Appointments []*appointmentJSON `json:"appointments"`
}

func toClientDetailJSON(d *repo.ClientDetail) *clientDetailJSON {
	out := &clientDetailJSON{
		clientJSON:   *toClientJSON(&d.Client),
		Appointments: make([]*appointmentJSON, 0, len(d.Appointments)),
	}
	for _, a := range d.Appointments {
		out.Appointments = append(out.Appointments, toAppointmentJSON(a))
	}
	return out
}

type serviceJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
}

func toServiceJSON(s *repo.Service) *serviceJSON {
	if s == nil {
		return nil
	}
	return &serviceJSON{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
	}
}

type linkJSON struct {
	ID            int64 `json:"id"`
	AppointmentID int64 `json:"appointmentId"`
	ServiceID     int64 `json:"serviceId"`
}

type serviceDetailJSON struct {
	serviceJSON
	AppointmentServices []linkJSON `json:"appointmentServices"`
}

func toServiceDetailJSON(d *repo.ServiceDetail) *serviceDetailJSON {
	out := &serviceDetailJSON{
		serviceJSON:         *toServiceJSON(&d.Service),
		AppointmentServices: make([]linkJSON, 0, len(d.Links)),
	}
	for _, l := range d.Links {
		out.AppointmentServices = append(out.AppointmentServices, linkJSON{
			ID:            l.ID,
			AppointmentID: l.AppointmentID,
			ServiceID:     l.ServiceID,
		})
	}
	return out
}

type appointmentJSON struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes"`
	ClientID int64   `json:"clientId"`
}

func toAppointmentJSON(a *repo.Appointment) *appointmentJSON {
	return &appointmentJSON{
		ID:       a.ID,
		Date:     a.Date.Format(repo.DateLayout),
		Time:     a.Time,
		Status:   string(a.Status),
		Notes:    a.Notes,
		ClientID: a.ClientID,
	}
}

type serviceLinkJSON struct {
	ID      int64        `json:"id"`
	Service *serviceJSON `json:"service"`
}

type appointmentDetailJSON struct {
	appointmentJSON
	Client              *clientJSON       `json:"client"`
	AppointmentServices []serviceLinkJSON `json:"appointmentServices"`
}

func toAppointmentDetailJSON(d *repo.AppointmentDetail) *appointmentDetailJSON {
	out := &appointmentDetailJSON{
		appointmentJSON:     *toAppointmentJSON(&d.Appointment),
		Client:              toClientJSON(d.Client),
		AppointmentServices: make([]serviceLinkJSON, 0, len(d.Services)),
	}
	for _, l := range d.Services {
		out.AppointmentServices = append(out.AppointmentServices, serviceLinkJSON{
			ID:      l.ID,
			Service: toServiceJSON(l.Service),
		})
	}
	return out
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
