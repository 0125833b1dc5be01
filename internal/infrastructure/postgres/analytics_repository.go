package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard admin.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardCounts conteos globales en una sola ida a la base.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'customer'),
			(SELECT COUNT(*) FROM users WHERE role = 'professional'),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 'completed'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
			(SELECT COUNT(*) FROM service_categories WHERE active)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&c.TotalUsers, &c.TotalCustomers, &c.TotalProfessionals,
		&c.TotalBookings, &c.CompletedBookings, &c.PendingBookings,
		&c.ActiveCategories,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// RecentBookings últimas reservas para la vista de actividad reciente.
func (r *AnalyticsRepo) RecentBookings(ctx context.Context, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(bookingFields(&b)...); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
