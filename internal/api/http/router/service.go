package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/api/http/handler"
)

func (r *Router) registerServiceRoutes(api fiber.Router, h *handler.ServiceHandler) {
	services := api.Group("/services")
	services.Get("/", h.List)
	services.Post("/", h.Create)
	services.Get("/:id", h.GetByID)
}
