package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceCategoryRequest entrada para crear una categoría (solo admin).
type CreateServiceCategoryRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	PriceMin      decimal.Decimal `json:"price_min"`
	PriceMax      decimal.Decimal `json:"price_max"`
	EstimatedTime string          `json:"estimated_time"`
	Icon          string          `json:"icon"`
}

// ServiceCategoryResponse salida de una categoría del catálogo.
type ServiceCategoryResponse struct {
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PriceMin      decimal.Decimal `json:"price_min"`
	PriceMax      decimal.Decimal `json:"price_max"`
	EstimatedTime string          `json:"estimated_time"`
	Icon          string          `json:"icon"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}
