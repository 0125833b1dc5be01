package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Professional es el perfil extendido de un usuario con rol professional.
// Rating y TotalReviews son agregados mantenidos por la creación de reseñas
// (en la misma transacción, ver application/booking).
type Professional struct {
	UserID            string
	ServiceCategories []string        // IDs de categorías que atiende
	Availability      json.RawMessage // estructura libre definida por el frontend
	Verified          bool            // solo admin puede verificar
	Rating            decimal.Decimal // promedio 0-5
	TotalReviews      int
	EarningsTotal     decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
