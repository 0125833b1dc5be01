package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
)

// ReviewRepository puerto de persistencia de reseñas.
// Create debe traducir la violación del índice unique sobre booking_id a
// domain.ErrDuplicate (una reseña por reserva).
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByBookingID(bookingID string) (*entity.Review, error)
	ListByProfessional(professionalID string, limit int) ([]*entity.Review, error)
	// AverageByProfessional devuelve promedio y conteo de ratings del profesional.
	AverageByProfessional(professionalID string) (decimal.Decimal, int, error)
}
