// Package catalog manages the treatments the clinic offers.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/pkg/reqctx"
)

type CreateRequest struct {
	Name        string
	Description string
	Price       float64
	// Duration is advisory text such as "30 minutes".
	Duration string
}

func (r CreateRequest) Record() (*repo.Service, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidRequest)
	}
	if r.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidRequest)
	}
	return &repo.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
	}, nil
}

type Service interface {
	List(ctx context.Context) ([]*repo.ServiceDetail, error)
	GetByID(ctx context.Context, id int64) (*repo.ServiceDetail, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Service, error)
	// FindByName returns nil, nil when no service has exactly that name.
	FindByName(ctx context.Context, name string) (*repo.Service, error)
}

type catalogService struct {
	store repo.Store
}

func New(store repo.Store) Service {
	return &catalogService{store: store}
}

func (s *catalogService) List(ctx context.Context) ([]*repo.ServiceDetail, error) {
	services, err := s.store.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	details, err := repo.ServiceDetails(ctx, s.store, services)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return details, nil
}

func (s *catalogService) GetByID(ctx context.Context, id int64) (*repo.ServiceDetail, error) {
	svc, err := s.store.GetService(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	details, err := repo.ServiceDetails(ctx, s.store, []*repo.Service{svc})
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return details[0], nil
}

func (s *catalogService) Create(ctx context.Context, req CreateRequest) (*repo.Service, error) {
	svc, err := req.Record()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	slog.InfoContext(ctx, "service created", append(reqctx.LogAttrs(ctx), "service_id", svc.ID, "name", svc.Name)...)
	return svc, nil
}

func (s *catalogService) FindByName(ctx context.Context, name string) (*repo.Service, error) {
	svc, err := s.store.FindServiceByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	return svc, nil
}
