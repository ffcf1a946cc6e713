package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
)

// ServiceHandler serves the treatment catalog under /services.
type ServiceHandler struct {
	svc catalog.Service
}

func NewServiceHandler(svc catalog.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /services
func (h *ServiceHandler) List(c fiber.Ctx) error {
	services, err := h.svc.List(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, mapSlice(services, toServiceDetailJSON))
}

// GET /services/:id
func (h *ServiceHandler) GetByID(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid service id")
	}

	s, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, toServiceDetailJSON(s))
}

// POST /services
func (h *ServiceHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Duration    string  `json:"duration"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	s, err := h.svc.Create(c.Context(), catalog.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Duration:    body.Duration,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, toServiceJSON(s))
}
