package repository

import (
	"context"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
)

// DashboardCounts conteos agregados para el dashboard de administración.
type DashboardCounts struct {
	TotalUsers         int
	TotalCustomers     int
	TotalProfessionals int
	TotalBookings      int
	CompletedBookings  int
	PendingBookings    int
	ActiveCategories   int
}

// AnalyticsRepository consultas de solo lectura para el dashboard admin.
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)
	RecentBookings(ctx context.Context, limit int) ([]*entity.Booking, error)
}
