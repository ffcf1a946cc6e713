// Package seed loads the clinic's demo catalog, clients and appointments.
// Running it again does not duplicate data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

// Result counts the records a run created.
type Result struct {
	Services     int
	Clients      int
	Appointments int
}

type Seeder struct {
	store        repo.Queries
	catalog      catalog.Service
	clients      client.Service
	appointments appointment.Service
}

func New(store repo.Queries, cat catalog.Service, cl client.Service, appts appointment.Service) *Seeder {
	return &Seeder{store: store, catalog: cat, clients: cl, appointments: appts}
}

// Run seeds services (matched by name), clients (matched by email) and,
// only when no appointment exists yet, the demo appointments spread over
// the clients in turn. A failing record is logged and skipped; all
// failures are returned together.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var (
		res  Result
		errs []error
	)

	slog.InfoContext(ctx, "seeding services")
	serviceIDs := make([]int64, len(services))
	for i, req := range services {
		existing, err := s.catalog.FindByName(ctx, req.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("service %q: %w", req.Name, err))
			continue
		}
		if existing != nil {
			slog.DebugContext(ctx, "service already exists", "name", req.Name, "service_id", existing.ID)
			serviceIDs[i] = existing.ID
			continue
		}
		created, err := s.catalog.Create(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("service %q: %w", req.Name, err))
			continue
		}
		serviceIDs[i] = created.ID
		res.Services++
	}

	slog.InfoContext(ctx, "seeding clients")
	var clientIDs []int64
	for _, req := range clients {
		existing, err := s.store.FindClientByEmail(ctx, req.Email)
		if err != nil {
			errs = append(errs, fmt.Errorf("client %s: %w", req.Email, err))
			continue
		}
		if existing != nil {
			slog.DebugContext(ctx, "client already exists", "email", req.Email, "client_id", existing.ID)
			clientIDs = append(clientIDs, existing.ID)
			continue
		}
		created, err := s.clients.Create(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("client %s: %w", req.Email, err))
			continue
		}
		clientIDs = append(clientIDs, created.ID)
		res.Clients++
	}

	n, err := s.store.CountAppointments(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("count appointments: %w", err))
	case n > 0:
		slog.InfoContext(ctx, "appointments already present, skipping", "count", n)
	case len(clientIDs) == 0:
		errs = append(errs, errors.New("no clients available for appointments"))
	default:
		slog.InfoContext(ctx, "seeding appointments")
		for i, a := range appointments {
			ids, err := resolveServices(a.services, serviceIDs)
			if err != nil {
				errs = append(errs, fmt.Errorf("appointment %d: %w", i+1, err))
				continue
			}
			if _, err := s.appointments.Create(ctx, appointment.CreateRequest{
				Client:     appointment.ExistingClient{ID: clientIDs[i%len(clientIDs)]},
				ServiceIDs: ids,
				Date:       a.date,
				Time:       a.time,
				Status:     a.status,
				Notes:      a.notes,
			}); err != nil {
				errs = append(errs, fmt.Errorf("appointment %d: %w", i+1, err))
				continue
			}
			res.Appointments++
		}
	}

	slog.InfoContext(ctx, "seeding completed",
		"services_created", res.Services,
		"clients_created", res.Clients,
		"appointments_created", res.Appointments,
		"failures", len(errs),
	)
	return res, errors.Join(errs...)
}

func resolveServices(positions []int, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(positions))
	for _, p := range positions {
		if p < 1 || p > len(ids) || ids[p-1] == 0 {
			return nil, fmt.Errorf("service #%d was not seeded", p)
		}
		out = append(out, ids[p-1])
	}
	return out, nil
}
