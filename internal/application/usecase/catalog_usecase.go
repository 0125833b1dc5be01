package usecase

import (
	"time"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// CatalogUseCase catálogo de categorías de servicio: listado público y
// creación (restringida a admin en la capa HTTP).
type CatalogUseCase struct {
	repo repository.ServiceCategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ServiceCategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListActive devuelve las categorías activas del catálogo.
func (uc *CatalogUseCase) ListActive() ([]dto.ServiceCategoryResponse, error) {
	categories, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toServiceCategoryResponse(c))
	}
	return out, nil
}

// GetActiveByID devuelve una categoría activa por su category_id.
// Las categorías desactivadas no son visibles en el catálogo público.
func (uc *CatalogUseCase) GetActiveByID(categoryID string) (*dto.ServiceCategoryResponse, error) {
	category, err := uc.repo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.Active {
		return nil, domain.ErrNotFound
	}
	return toServiceCategoryResponse(category), nil
}

// Create crea una nueva categoría activa.
func (uc *CatalogUseCase) Create(in dto.CreateServiceCategoryRequest) (*dto.ServiceCategoryResponse, error) {
	if in.PriceMax.LessThan(in.PriceMin) {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.ServiceCategory{
		ID:            entity.NewID("service", 8),
		Name:          in.Name,
		Description:   in.Description,
		PriceMin:      in.PriceMin,
		PriceMax:      in.PriceMax,
		EstimatedTime: in.EstimatedTime,
		Icon:          in.Icon,
		Active:        true,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toServiceCategoryResponse(category), nil
}

func toServiceCategoryResponse(c *entity.ServiceCategory) *dto.ServiceCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.ServiceCategoryResponse{
		CategoryID:    c.ID,
		Name:          c.Name,
		Description:   c.Description,
		PriceMin:      c.PriceMin,
		PriceMax:      c.PriceMax,
		EstimatedTime: c.EstimatedTime,
		Icon:          c.Icon,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}
