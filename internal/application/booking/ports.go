package booking

import (
	"context"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// Notifier envía avisos SMS al cliente en eventos del ciclo de vida de la
// reserva. Las implementaciones no deben fallar la operación principal: un
// SMS que no sale se registra y se sigue.
type Notifier interface {
	SendSMS(ctx context.Context, toPhone, message string)
}

// ReceiptGenerator genera el comprobante PDF de una reserva.
type ReceiptGenerator interface {
	GenerateBookingReceipt(ctx context.Context, b *entity.Booking, category *entity.ServiceCategory) ([]byte, error)
}

// ReviewTxRunner ejecuta el alta de reseña y la actualización de agregados del
// profesional dentro de una misma transacción.
type ReviewTxRunner interface {
	Run(ctx context.Context, fn func(
		reviewRepo repository.ReviewRepository,
		profRepo repository.ProfessionalRepository,
	) error) error
}
