package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/application/usecase"
)

// ProfessionalHandler perfil y ganancias del profesional autenticado.
type ProfessionalHandler struct {
	uc *usecase.ProfessionalUseCase
}

// NewProfessionalHandler construye el handler de profesionales.
func NewProfessionalHandler(uc *usecase.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{uc: uc}
}

// UpsertProfile godoc
// @Summary      Crear o actualizar el perfil profesional propio
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertProfessionalProfileRequest  true  "categorías y disponibilidad"
// @Success      200   {object}  dto.ProfessionalResponse
// @Router       /api/professionals/profile [put]
func (h *ProfessionalHandler) UpsertProfile(c *fiber.Ctx) error {
	var in dto.UpsertProfessionalProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	out, err := h.uc.UpsertProfile(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetProfile godoc
// @Summary      Perfil profesional propio
// @Tags         professionals
// @Produce      json
// @Success      200  {object}  dto.ProfessionalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/professionals/profile [get]
func (h *ProfessionalHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Earnings godoc
// @Summary      Dashboard de ganancias del profesional
// @Tags         professionals
// @Produce      json
// @Success      200  {object}  dto.EarningsResponse
// @Router       /api/professionals/earnings [get]
func (h *ProfessionalHandler) Earnings(c *fiber.Ctx) error {
	out, err := h.uc.Earnings(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
