package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	clients, err := h.svc.List(c.Context())
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, mapSlice(clients, toClientDetailJSON))
}

// GET /clients/:id
func (h *ClientHandler) GetByID(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid client id")
	}

	cl, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, toClientDetailJSON(cl))
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	var body clientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Create(c.Context(), *body.request())
	if err != nil {
		return mapClientError(c, err)
	}
	return created(c, toClientJSON(cl))
}
