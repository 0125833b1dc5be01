package repository

import "github.com/jhoicas/servihogar-api/internal/domain/entity"

// ServiceCategoryRepository puerto de persistencia del catálogo.
type ServiceCategoryRepository interface {
	Create(category *entity.ServiceCategory) error
	GetByID(id string) (*entity.ServiceCategory, error)
	ListActive() ([]*entity.ServiceCategory, error)
}
