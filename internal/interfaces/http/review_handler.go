package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
)

// ReviewHandler reseñas de reservas completadas.
type ReviewHandler struct {
	uc *appbooking.ReviewUseCase
}

// NewReviewHandler construye el handler de reseñas.
func NewReviewHandler(uc *appbooking.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Reseñar una reserva completada propia (solo customer, una por reserva)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "booking_id, rating 1-5, comment"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetCurrentUser(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_REVIEW", Detail: "ya has calificado esta reserva"})
		}
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProfessional godoc
// @Summary      Reseñas de un profesional (público)
// @Tags         reviews
// @Produce      json
// @Param        id   path   string  true  "user_id del profesional"
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/reviews/professional/{id} [get]
func (h *ReviewHandler) ListByProfessional(c *fiber.Ctx) error {
	out, err := h.uc.ListByProfessional(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
