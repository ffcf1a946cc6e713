package repo

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is how calendar dates cross the API and are stored.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three appointment states. Any
// state may follow any other.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseDate accepts YYYY-MM-DD and, for callers that send full ISO
// timestamps, RFC 3339. The result is midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want %s", s, DateLayout)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

type Client struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      *time.Time
	Address          *string
	EmergencyContact *string
	MedicalHistory   *string
}

type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	// Duration is advisory text such as "45-60 min".
	Duration string
}

type Appointment struct {
	ID       int64
	ClientID int64
	Date     time.Time
	// Time is stored as given, e.g. "09:00" or "9:00 AM".
	Time   string
	Status Status
	Notes  *string
}

// AppointmentService links one appointment to one catalog service.
type AppointmentService struct {
	ID            int64
	AppointmentID int64
	ServiceID     int64
}

// ServiceLink is an AppointmentService with its service resolved. Service
// is nil when the link points at a service id that does not exist.
type ServiceLink struct {
	ID      int64
	Service *Service
}

// AppointmentDetail is an appointment with its client and service links.
// Client is nil for a dangling client id.
type AppointmentDetail struct {
	Appointment
	Client   *Client
	Services []ServiceLink
}

type ClientDetail struct {
	Client
	Appointments []*Appointment
}

type ServiceDetail struct {
	Service
	Links []*AppointmentService
}
