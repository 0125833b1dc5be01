package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
)

// ProfessionalRepository puerto de persistencia de perfiles profesionales.
type ProfessionalRepository interface {
	Create(prof *entity.Professional) error
	GetByUserID(userID string) (*entity.Professional, error)
	Update(prof *entity.Professional) error
	UpdateVerified(userID string, verified bool) (bool, error)
	// UpdateRating actualiza los agregados de reseñas. Se usa dentro de la
	// transacción de creación de reseña (ver TxRunner).
	UpdateRating(userID string, rating decimal.Decimal, totalReviews int) error
	List() ([]*entity.Professional, error)
}
