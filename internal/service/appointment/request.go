package appointment

import (
	"fmt"

	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

// ClientRef names the client an appointment is booked for. It is either
// ExistingClient or NewClient.
type ClientRef interface {
	clientRef()
}

// ExistingClient refers to a stored client by id. The id is not checked.
type ExistingClient struct {
	ID int64
}

// NewClient carries a client payload. Booking reuses a stored client with
// the same email, first name and last name, compared exactly.
type NewClient struct {
	client.CreateRequest
}

func (ExistingClient) clientRef() {}
func (NewClient) clientRef()      {}

// ClientRefFrom builds a ClientRef from the two optional request fields.
// Exactly one of them must be set.
func ClientRefFrom(clientID *int64, payload *client.CreateRequest) (ClientRef, error) {
	switch {
	case clientID != nil && payload != nil:
		return nil, fmt.Errorf("%w: provide either clientId or client, not both", ErrInvalidRequest)
	case clientID != nil:
		return ExistingClient{ID: *clientID}, nil
	case payload != nil:
		return NewClient{CreateRequest: *payload}, nil
	default:
		return nil, fmt.Errorf("%w: clientId or client is required", ErrInvalidRequest)
	}
}

// ServiceChange says what an update does with the appointment's service
// links. A nil ServiceChange is treated as KeepServices.
type ServiceChange interface {
	serviceChange()
}

// KeepServices leaves the existing links untouched.
type KeepServices struct{}

// ReplaceServices removes every existing link and adds one per id. An empty
// IDs removes all services.
type ReplaceServices struct {
	IDs []int64
}

func (KeepServices) serviceChange()    {}
func (ReplaceServices) serviceChange() {}

type CreateRequest struct {
	Client ClientRef
	// ServiceIDs become one link each, duplicates included.
	ServiceIDs []int64
	Date       string
	Time       string
	// Status defaults to scheduled when empty.
	Status string
	Notes  *string
}

// Payment is accepted from the booking form and discarded.
type Payment struct {
	Method         string
	CardNumber     string
	ExpiryDate     string
	CVV            string
	BillingAddress string
}

type BookRequest struct {
	Client     client.CreateRequest
	ServiceIDs []int64
	Date       string
	Time       string
	Notes      *string
	Payment    Payment
}

type UpdateRequest struct {
	Date     string
	Time     string
	Status   string
	Notes    *string
	Services ServiceChange
}
