package http

import (
	"github.com/gofiber/fiber/v2"

	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
)

// BookingHandler ciclo de vida de reservas.
type BookingHandler struct {
	uc *appbooking.BookingUseCase
}

// NewBookingHandler construye el handler de reservas.
func NewBookingHandler(uc *appbooking.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reserva (solo customer)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if in.ServiceCategoryID == "" || in.Address == "" || in.ScheduledDate == "" || in.ScheduledTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "service_category_id, address, scheduled_date y scheduled_time son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetCurrentUser(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reservas visibles para el usuario (customer: propias, professional: asignadas, admin: todas)
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  dto.BookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(GetCurrentUser(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una reserva propia
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "booking_id"
// @Success      200  {object}  dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la reserva (mismas reglas de propiedad que Get)
// @Tags         bookings
// @Produce      application/pdf
// @Param        id   path  string  true  "booking_id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/receipt [get]
func (h *BookingHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// Available godoc
// @Summary      Bolsa de trabajos pendientes para el profesional verificado
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  dto.BookingResponse
// @Router       /api/bookings/available [get]
func (h *BookingHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.AvailableForProfessional(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Aceptar reserva pendiente (solo professional)
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "booking_id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/accept [put]
func (h *BookingHandler) Accept(c *fiber.Ctx) error {
	if err := h.uc.Accept(c.Context(), GetCurrentUser(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "reserva aceptada"})
}

// Reject godoc
// @Summary      Rechazar (cancelar) reserva pendiente (solo professional)
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "booking_id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/reject [put]
func (h *BookingHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Context(), GetCurrentUser(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "reserva cancelada"})
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una reserva propia
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "booking_id"
// @Param        body  body  dto.UpdateBookingStatusRequest true  "status"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), GetCurrentUser(c), c.Params("id"), in.Status); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "estado actualizado"})
}
