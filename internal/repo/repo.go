// Package repo defines the clinic's stored records and the storage contract
// shared by the PostgreSQL and in-memory stores.
//
// Records reference each other by id only. Populated views such as
// AppointmentDetail are assembled by explicit lookups in details.go.
package repo

import (
	"context"
	"errors"
)

// ErrNotFound is returned by single-record reads, updates and deletes when
// no row has the requested id.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Queries is the set of storage operations available both outside and
// inside a transaction. Create methods assign the new id to the record.
type Queries interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id int64) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
	ClientsByIDs(ctx context.Context, ids []int64) (map[int64]*Client, error)
	// FindClientByIdentity matches all three fields exactly. It returns
	// nil, nil when there is no match.
	FindClientByIdentity(ctx context.Context, email, firstName, lastName string) (*Client, error)
	// FindClientByEmail returns the lowest-id client with that email, or
	// nil, nil.
	FindClientByEmail(ctx context.Context, email string) (*Client, error)

	CreateService(ctx context.Context, s *Service) error
	GetService(ctx context.Context, id int64) (*Service, error)
	ListServices(ctx context.Context) ([]*Service, error)
	ServicesByIDs(ctx context.Context, ids []int64) (map[int64]*Service, error)
	// FindServiceByName returns the lowest-id service with that exact name,
	// or nil, nil.
	FindServiceByName(ctx context.Context, name string) (*Service, error)

	CreateAppointment(ctx context.Context, a *Appointment) error
	GetAppointment(ctx context.Context, id int64) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]*Appointment, error)
	AppointmentsByClients(ctx context.Context, clientIDs []int64) ([]*Appointment, error)
	UpdateAppointment(ctx context.Context, a *Appointment) error
	DeleteAppointment(ctx context.Context, id int64) error
	CountAppointments(ctx context.Context) (int, error)

	CreateAppointmentService(ctx context.Context, l *AppointmentService) error
	LinksByAppointments(ctx context.Context, appointmentIDs []int64) ([]*AppointmentService, error)
	LinksByServices(ctx context.Context, serviceIDs []int64) ([]*AppointmentService, error)
	// DeleteLinksByAppointment removes every link of the appointment and
	// reports how many were removed.
	DeleteLinksByAppointment(ctx context.Context, appointmentID int64) (int64, error)
}

// TxFunc runs against the transaction's view of the store.
type TxFunc func(ctx context.Context, q Queries) error

// Store is a Queries backed by a database, able to run a group of
// operations atomically.
type Store interface {
	Queries

	// WithTx commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn TxFunc) error
	Ping(ctx context.Context) error
	Close() error
}
