package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/api/http/handler"
)

func (r *Router) registerClientRoutes(api fiber.Router, h *handler.ClientHandler) {
	clients := api.Group("/clients")
	clients.Get("/", h.List)
	clients.Post("/", h.Create)
	clients.Get("/:id", h.GetByID)
}
