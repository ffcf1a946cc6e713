package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/pkg/events"
	"github.com/Alijeyrad/dental_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.AppointmentDetail, error)
	GetByID(ctx context.Context, id int64) (*repo.AppointmentDetail, error)
	Create(ctx context.Context, req CreateRequest) (*repo.AppointmentDetail, error)
	// Book is Create for the public booking form: a new-client payload is
	// required and the status is always scheduled.
	Book(ctx context.Context, req BookRequest) (*repo.AppointmentDetail, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*repo.AppointmentDetail, error)
	Delete(ctx context.Context, id int64) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	store  repo.Store
	events events.Publisher
}

func New(store repo.Store, pub events.Publisher) Service {
	if pub == nil {
		pub = events.Nop()
	}
	return &appointmentService{store: store, events: pub}
}

func (s *appointmentService) List(ctx context.Context) ([]*repo.AppointmentDetail, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	details, err := repo.AppointmentDetails(ctx, s.store, appts)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return details, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int64) (*repo.AppointmentDetail, error) {
	d, err := repo.AppointmentDetailByID(ctx, s.store, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return d, nil
}

func (s *appointmentService) Create(ctx context.Context, req CreateRequest) (*repo.AppointmentDetail, error) {
	if req.Client == nil {
		return nil, fmt.Errorf("%w: clientId or client is required", ErrInvalidRequest)
	}

	status := repo.StatusScheduled
	if req.Status != "" {
		status = repo.Status(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, req.Status)
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var newClient *repo.Client
	if nc, ok := req.Client.(NewClient); ok {
		if newClient, err = nc.Record(); err != nil {
			return nil, fmt.Errorf("%w: client: %v", ErrInvalidRequest, err)
		}
	}

	appt := &repo.Appointment{
		Date:   date,
		Time:   req.Time,
		Status: status,
		Notes:  req.Notes,
	}

	var createdClient bool
	err = s.store.WithTx(ctx, func(ctx context.Context, q repo.Queries) error {
		switch ref := req.Client.(type) {
		case ExistingClient:
			appt.ClientID = ref.ID
		case NewClient:
			id, created, err := resolveClient(ctx, q, newClient)
			if err != nil {
				return err
			}
			appt.ClientID, createdClient = id, created
		default:
			return fmt.Errorf("%w: unsupported client reference %T", ErrInvalidRequest, ref)
		}

		if err := q.CreateAppointment(ctx, appt); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return linkServices(ctx, q, appt.ID, req.ServiceIDs)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "appointment created", append(reqctx.LogAttrs(ctx),
		"appointment_id", appt.ID,
		"client_id", appt.ClientID,
		"new_client", createdClient,
		"services", len(req.ServiceIDs),
	)...)
	s.events.AppointmentChanged(ctx, events.ActionCreated, appt.ID)

	return s.GetByID(ctx, appt.ID)
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.AppointmentDetail, error) {
	return s.Create(ctx, CreateRequest{
		Client:     NewClient{CreateRequest: req.Client},
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
		Status:     string(repo.StatusScheduled),
		Notes:      req.Notes,
	})
}

func (s *appointmentService) Update(ctx context.Context, id int64, req UpdateRequest) (*repo.AppointmentDetail, error) {
	status := repo.Status(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, req.Status)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, q repo.Queries) error {
		appt, err := q.GetAppointment(ctx, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return fmt.Errorf("%w: id %d", ErrNotFound, id)
			}
			return fmt.Errorf("get appointment: %w", err)
		}

		appt.Date = date
		appt.Time = req.Time
		appt.Status = status
		appt.Notes = req.Notes
		if err := q.UpdateAppointment(ctx, appt); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}

		switch change := req.Services.(type) {
		case nil, KeepServices:
		case ReplaceServices:
			if _, err := q.DeleteLinksByAppointment(ctx, id); err != nil {
				return fmt.Errorf("remove service links: %w", err)
			}
			return linkServices(ctx, q, id, change.IDs)
		default:
			return fmt.Errorf("%w: unsupported service change %T", ErrInvalidRequest, change)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "appointment updated", append(reqctx.LogAttrs(ctx), "appointment_id", id, "status", status)...)
	s.events.AppointmentChanged(ctx, events.ActionUpdated, id)

	return s.GetByID(ctx, id)
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	var removed int64
	err := s.store.WithTx(ctx, func(ctx context.Context, q repo.Queries) error {
		if _, err := q.GetAppointment(ctx, id); err != nil {
			if repo.IsNotFound(err) {
				return fmt.Errorf("%w: id %d", ErrNotFound, id)
			}
			return fmt.Errorf("get appointment: %w", err)
		}

		// links first, they reference the appointment
		var err error
		if removed, err = q.DeleteLinksByAppointment(ctx, id); err != nil {
			return fmt.Errorf("remove service links: %w", err)
		}
		if err := q.DeleteAppointment(ctx, id); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "appointment deleted", append(reqctx.LogAttrs(ctx), "appointment_id", id, "links_removed", removed)...)
	s.events.AppointmentChanged(ctx, events.ActionDeleted, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// resolveClient returns the id of the stored client matching c exactly, or
// stores c and returns its new id.
func resolveClient(ctx context.Context, q repo.Queries, c *repo.Client) (int64, bool, error) {
	existing, err := q.FindClientByIdentity(ctx, c.Email, c.FirstName, c.LastName)
	if err != nil {
		return 0, false, fmt.Errorf("find client: %w", err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}
	if err := q.CreateClient(ctx, c); err != nil {
		return 0, false, fmt.Errorf("create client: %w", err)
	}
	return c.ID, true, nil
}

func linkServices(ctx context.Context, q repo.Queries, appointmentID int64, serviceIDs []int64) error {
	for _, sid := range serviceIDs {
		if err := q.CreateAppointmentService(ctx, &repo.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     sid,
		}); err != nil {
			return fmt.Errorf("link service %d: %w", sid, err)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	d, err := repo.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date: %v", ErrInvalidRequest, err)
	}
	return d, nil
}
