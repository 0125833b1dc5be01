package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory representa una categoría de servicio del catálogo
// (electricista, plomero, etc.). ID tiene la forma "service_<hex8>".
type ServiceCategory struct {
	ID            string
	Name          string
	Description   string
	PriceMin      decimal.Decimal // rango de precio estimado en USD
	PriceMax      decimal.Decimal
	EstimatedTime string // texto libre, ej. "1-2 horas"
	Icon          string
	Active        bool
	CreatedAt     time.Time
}
