package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	appts, err := h.svc.List(c.Context())
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, mapSlice(appts, toAppointmentDetailJSON))
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, toAppointmentDetailJSON(appt))
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		ClientID   *int64      `json:"clientId"`
		Client     *clientBody `json:"client"`
		ServiceIDs serviceIDs  `json:"serviceIds"`
		Date       string      `json:"date"`
		Time       string      `json:"time"`
		Status     string      `json:"status"`
		Notes      *string     `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	// a zero clientId counts as absent
	if body.ClientID != nil && *body.ClientID == 0 {
		body.ClientID = nil
	}

	ref, err := appointment.ClientRefFrom(body.ClientID, body.Client.request())
	if err != nil {
		return mapAppointmentError(c, err)
	}

	appt, err := h.svc.Create(c.Context(), appointment.CreateRequest{
		Client:     ref,
		ServiceIDs: body.ServiceIDs.IDs,
		Date:       body.Date,
		Time:       body.Time,
		Status:     body.Status,
		Notes:      body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, toAppointmentDetailJSON(appt))
}

// POST /appointments/book
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		Client         *clientBody `json:"client"`
		ServiceIDs     serviceIDs  `json:"serviceIds"`
		Date           string      `json:"date"`
		Time           string      `json:"time"`
		Notes          *string     `json:"notes"`
		PaymentMethod  string      `json:"paymentMethod"`
		CardNumber     string      `json:"cardNumber"`
		ExpiryDate     string      `json:"expiryDate"`
		CVV            string      `json:"cvv"`
		BillingAddress string      `json:"billingAddress"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Client == nil {
		return badRequest(c, "client is required")
	}

	appt, err := h.svc.Book(c.Context(), appointment.BookRequest{
		Client:     *body.Client.request(),
		ServiceIDs: body.ServiceIDs.IDs,
		Date:       body.Date,
		Time:       body.Time,
		Notes:      body.Notes,
		Payment: appointment.Payment{
			Method:         body.PaymentMethod,
			CardNumber:     body.CardNumber,
			ExpiryDate:     body.ExpiryDate,
			CVV:            body.CVV,
			BillingAddress: body.BillingAddress,
		},
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, toAppointmentDetailJSON(appt))
}

// PUT|PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date       string     `json:"date"`
		Time       string     `json:"time"`
		Status     string     `json:"status"`
		Notes      *string    `json:"notes"`
		ServiceIDs serviceIDs `json:"serviceIds"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := appointment.UpdateRequest{
		Date:     body.Date,
		Time:     body.Time,
		Status:   body.Status,
		Notes:    body.Notes,
		Services: appointment.KeepServices{},
	}
	if body.ServiceIDs.Set {
		req.Services = appointment.ReplaceServices{IDs: body.ServiceIDs.IDs}
	}

	appt, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, toAppointmentDetailJSON(appt))
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

