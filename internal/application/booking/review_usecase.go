package booking

import (
	"context"
	"time"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// ReviewUseCase reseñas de reservas completadas. La inserción de la reseña y
// la actualización de rating/total_reviews del profesional van en la misma
// transacción (ReviewTxRunner): nunca queda una reseña sin reflejar en el agregado.
type ReviewUseCase struct {
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	tx          ReviewTxRunner
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(bookingRepo repository.BookingRepository, reviewRepo repository.ReviewRepository, tx ReviewTxRunner) *ReviewUseCase {
	return &ReviewUseCase{bookingRepo: bookingRepo, reviewRepo: reviewRepo, tx: tx}
}

// Create crea la reseña del cliente sobre su reserva completada.
// Reglas: la reserva debe existir, ser del cliente y estar completada; una
// reseña por reserva. El chequeo de reseña existente es cortesía: el índice
// unique sobre booking_id decide la carrera y también produce ErrDuplicate.
func (uc *ReviewUseCase) Create(ctx context.Context, user *entity.User, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.bookingRepo.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.CustomerID != user.ID {
		return nil, domain.ErrForbidden
	}
	if b.Status != entity.BookingCompleted {
		return nil, domain.ErrConflict
	}
	if existing, err := uc.reviewRepo.GetByBookingID(in.BookingID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	review := &entity.Review{
		ID:             entity.NewID("review", 12),
		BookingID:      b.ID,
		CustomerID:     user.ID,
		CustomerName:   user.Name,
		ProfessionalID: b.ProfessionalID,
		Rating:         in.Rating,
		Comment:        in.Comment,
		CreatedAt:      time.Now(),
	}

	err = uc.tx.Run(ctx, func(reviewRepo repository.ReviewRepository, profRepo repository.ProfessionalRepository) error {
		if err := reviewRepo.Create(review); err != nil {
			return err
		}
		avg, total, err := reviewRepo.AverageByProfessional(b.ProfessionalID)
		if err != nil {
			return err
		}
		return profRepo.UpdateRating(b.ProfessionalID, avg, total)
	})
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// ListByProfessional devuelve las reseñas de un profesional (público).
func (uc *ReviewUseCase) ListByProfessional(professionalID string) ([]dto.ReviewResponse, error) {
	reviews, err := uc.reviewRepo.ListByProfessional(professionalID, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, *toReviewResponse(r))
	}
	return out, nil
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ReviewID:       r.ID,
		BookingID:      r.BookingID,
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		ProfessionalID: r.ProfessionalID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}
