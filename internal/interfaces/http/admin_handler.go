package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/application/usecase"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// AdminHandler operaciones de administración de la plataforma.
// Todas las rutas de este handler van detrás de RequireRole(admin).
type AdminHandler struct {
	userRepo    repository.UserRepository
	profUC      *usecase.ProfessionalUseCase
	analyticsUC *usecase.AnalyticsUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(userRepo repository.UserRepository, profUC *usecase.ProfessionalUseCase, analyticsUC *usecase.AnalyticsUseCase) *AdminHandler {
	return &AdminHandler{userRepo: userRepo, profUC: profUC, analyticsUC: analyticsUC}
}

// ListUsers godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "paginación inválida"})
	}
	page.DefaultPage()
	users, err := h.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return c.JSON(out)
}

// ListProfessionals godoc
// @Summary      Listar perfiles profesionales con datos de usuario (solo admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.ProfessionalResponse
// @Router       /api/admin/professionals [get]
func (h *AdminHandler) ListProfessionals(c *fiber.Ctx) error {
	out, err := h.profUC.ListWithUsers()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// VerifyProfessional godoc
// @Summary      Verificar o desverificar un profesional (solo admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                        true  "user_id del profesional"
// @Param        body     body  dto.VerifyProfessionalRequest true  "verified"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/professionals/{user_id}/verify [put]
func (h *AdminHandler) VerifyProfessional(c *fiber.Ctx) error {
	var in dto.VerifyProfessionalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if err := h.profUC.Verify(c.Params("user_id"), in.Verified); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "verificación actualizada"})
}

// Analytics godoc
// @Summary      Resumen de plataforma para el dashboard (solo admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminAnalyticsResponse
// @Router       /api/admin/analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.analyticsUC.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
