// Package memory is an in-process repo.Store. Each table is a map from id to
// record; transactions run on a private copy of every table that replaces
// the live state only on success.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

var ErrClosed = errors.New("memory store is closed")

type Store struct {
	mu     sync.RWMutex
	state  *state
	closed bool
}

var _ repo.Store = (*Store)(nil)

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) check(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func read[T any](ctx context.Context, s *Store, fn func(q *queries) (T, error)) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		var zero T
		return zero, err
	}
	return fn(&queries{st: s.state})
}

// write applies a single operation to the live state. Every queries method
// validates before it mutates, so a failed call leaves the state unchanged.
func write[T any](ctx context.Context, s *Store, fn func(q *queries) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		var zero T
		return zero, err
	}
	return fn(&queries{st: s.state})
}

// WithTx holds the write lock for the whole of fn, so fn must only use the
// Queries it is given.
func (s *Store) WithTx(ctx context.Context, fn repo.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &queries{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.check(ctx)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) CreateClient(ctx context.Context, c *repo.Client) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.CreateClient(ctx, c) })
	return err
}

func (s *Store) GetClient(ctx context.Context, id int64) (*repo.Client, error) {
	return read(ctx, s, func(q *queries) (*repo.Client, error) { return q.GetClient(ctx, id) })
}

func (s *Store) ListClients(ctx context.Context) ([]*repo.Client, error) {
	return read(ctx, s, func(q *queries) ([]*repo.Client, error) { return q.ListClients(ctx) })
}

func (s *Store) ClientsByIDs(ctx context.Context, ids []int64) (map[int64]*repo.Client, error) {
	return read(ctx, s, func(q *queries) (map[int64]*repo.Client, error) { return q.ClientsByIDs(ctx, ids) })
}

func (s *Store) FindClientByIdentity(ctx context.Context, email, firstName, lastName string) (*repo.Client, error) {
	return read(ctx, s, func(q *queries) (*repo.Client, error) {
		return q.FindClientByIdentity(ctx, email, firstName, lastName)
	})
}

func (s *Store) FindClientByEmail(ctx context.Context, email string) (*repo.Client, error) {
	return read(ctx, s, func(q *queries) (*repo.Client, error) { return q.FindClientByEmail(ctx, email) })
}

func (s *Store) CreateService(ctx context.Context, svc *repo.Service) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.CreateService(ctx, svc) })
	return err
}

func (s *Store) GetService(ctx context.Context, id int64) (*repo.Service, error) {
	return read(ctx, s, func(q *queries) (*repo.Service, error) { return q.GetService(ctx, id) })
}

func (s *Store) ListServices(ctx context.Context) ([]*repo.Service, error) {
	return read(ctx, s, func(q *queries) ([]*repo.Service, error) { return q.ListServices(ctx) })
}

func (s *Store) ServicesByIDs(ctx context.Context, ids []int64) (map[int64]*repo.Service, error) {
	return read(ctx, s, func(q *queries) (map[int64]*repo.Service, error) { return q.ServicesByIDs(ctx, ids) })
}

func (s *Store) FindServiceByName(ctx context.Context, name string) (*repo.Service, error) {
	return read(ctx, s, func(q *queries) (*repo.Service, error) { return q.FindServiceByName(ctx, name) })
}

func (s *Store) CreateAppointment(ctx context.Context, a *repo.Appointment) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.CreateAppointment(ctx, a) })
	return err
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*repo.Appointment, error) {
	return read(ctx, s, func(q *queries) (*repo.Appointment, error) { return q.GetAppointment(ctx, id) })
}

func (s *Store) ListAppointments(ctx context.Context) ([]*repo.Appointment, error) {
	return read(ctx, s, func(q *queries) ([]*repo.Appointment, error) { return q.ListAppointments(ctx) })
}

func (s *Store) AppointmentsByClients(ctx context.Context, clientIDs []int64) ([]*repo.Appointment, error) {
	return read(ctx, s, func(q *queries) ([]*repo.Appointment, error) { return q.AppointmentsByClients(ctx, clientIDs) })
}

func (s *Store) UpdateAppointment(ctx context.Context, a *repo.Appointment) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.UpdateAppointment(ctx, a) })
	return err
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.DeleteAppointment(ctx, id) })
	return err
}

func (s *Store) CountAppointments(ctx context.Context) (int, error) {
	return read(ctx, s, func(q *queries) (int, error) { return q.CountAppointments(ctx) })
}

func (s *Store) CreateAppointmentService(ctx context.Context, l *repo.AppointmentService) error {
	_, err := write(ctx, s, func(q *queries) (struct{}, error) { return struct{}{}, q.CreateAppointmentService(ctx, l) })
	return err
}

func (s *Store) LinksByAppointments(ctx context.Context, appointmentIDs []int64) ([]*repo.AppointmentService, error) {
	return read(ctx, s, func(q *queries) ([]*repo.AppointmentService, error) {
		return q.LinksByAppointments(ctx, appointmentIDs)
	})
}

func (s *Store) LinksByServices(ctx context.Context, serviceIDs []int64) ([]*repo.AppointmentService, error) {
	return read(ctx, s, func(q *queries) ([]*repo.AppointmentService, error) { return q.LinksByServices(ctx, serviceIDs) })
}

func (s *Store) DeleteLinksByAppointment(ctx context.Context, appointmentID int64) (int64, error) {
	return write(ctx, s, func(q *queries) (int64, error) { return q.DeleteLinksByAppointment(ctx, appointmentID) })
}
