package usecase

import (
	"context"

	"github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

const recentBookingsLimit = 10 // reservas recientes en el dashboard admin

// AnalyticsUseCase resumen de plataforma para el dashboard de administración.
// Solo consultas read-only vía AnalyticsRepository.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary arma el AdminAnalyticsResponse: conteos por rol y estado más las
// últimas reservas.
func (uc *AnalyticsUseCase) GetSummary(ctx context.Context) (*dto.AdminAnalyticsResponse, error) {
	counts, err := uc.analyticsRepo.GetDashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.analyticsRepo.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.AdminAnalyticsResponse{
		TotalUsers:         counts.TotalUsers,
		TotalCustomers:     counts.TotalCustomers,
		TotalProfessionals: counts.TotalProfessionals,
		TotalBookings:      counts.TotalBookings,
		CompletedBookings:  counts.CompletedBookings,
		PendingBookings:    counts.PendingBookings,
		TotalServices:      counts.ActiveCategories,
		RecentBookings:     make([]dto.BookingResponse, 0, len(recent)),
	}
	for _, b := range recent {
		out.RecentBookings = append(out.RecentBookings, *booking.ToBookingResponse(b))
	}
	return out, nil
}
