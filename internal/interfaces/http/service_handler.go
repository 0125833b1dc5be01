package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/application/usecase"
)

// ServiceHandler catálogo de categorías de servicio.
type ServiceHandler struct {
	uc *usecase.CatalogUseCase
}

// NewServiceHandler construye el handler del catálogo.
func NewServiceHandler(uc *usecase.CatalogUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías activas del catálogo (público)
// @Tags         services
// @Produce      json
// @Success      200  {array}  dto.ServiceCategoryResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una categoría activa (público)
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "category_id"
// @Success      200  {object}  dto.ServiceCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetActiveByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría de servicio (solo admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceCategoryRequest  true  "categoría"
// @Success      201   {object}  dto.ServiceCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
