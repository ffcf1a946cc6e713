package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, ah *handler.AppointmentHandler) {
	appts := api.Group("/appointments")

	appts.Get("/", ah.List)
	appts.Post("/", ah.Create)
	appts.Post("/book", ah.Book)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Put("/", ah.Update)
	a.Patch("/", ah.Update)
	a.Delete("/", ah.Delete)
}
