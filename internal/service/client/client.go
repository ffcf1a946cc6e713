package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateRequest is a new client payload. DateOfBirth is an ISO date string.
type CreateRequest struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      *string
	Address          *string
	EmergencyContact *string
	MedicalHistory   *string
}

// Record validates the payload and converts it to a storable client. Field
// values are kept exactly as given.
func (r CreateRequest) Record() (*repo.Client, error) {
	var missing []string
	for _, f := range [...]struct{ name, value string }{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	c := &repo.Client{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		MedicalHistory:   r.MedicalHistory,
	}
	if r.DateOfBirth != nil && strings.TrimSpace(*r.DateOfBirth) != "" {
		dob, err := repo.ParseDate(*r.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: dateOfBirth: %v", ErrInvalidRequest, err)
		}
		c.DateOfBirth = &dob
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.ClientDetail, error)
	GetByID(ctx context.Context, id int64) (*repo.ClientDetail, error)
	// Create stores the payload as a new client without any dedup check.
	Create(ctx context.Context, req CreateRequest) (*repo.Client, error)
	// FindByIdentity returns nil, nil when no client matches exactly.
	FindByIdentity(ctx context.Context, email, firstName, lastName string) (*repo.Client, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	store repo.Store
}

func New(store repo.Store) Service {
	return &clientService{store: store}
}

func (s *clientService) List(ctx context.Context) ([]*repo.ClientDetail, error) {
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	details, err := repo.ClientDetails(ctx, s.store, clients)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return details, nil
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*repo.ClientDetail, error) {
	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	details, err := repo.ClientDetails(ctx, s.store, []*repo.Client{c})
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return details[0], nil
}

func (s *clientService) Create(ctx context.Context, req CreateRequest) (*repo.Client, error) {
	c, err := req.Record()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	slog.InfoContext(ctx, "client created", append(reqctx.LogAttrs(ctx), "client_id", c.ID)...)
	return c, nil
}

func (s *clientService) FindByIdentity(ctx context.Context, email, firstName, lastName string) (*repo.Client, error) {
	c, err := s.store.FindClientByIdentity(ctx, email, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return c, nil
}
