package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo reseñas sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create inserta la reseña. El índice unique sobre booking_id garantiza una
// reseña por reserva; la violación se traduce a ErrDuplicate.
func (r *ReviewRepo) Create(rv *entity.Review) error {
	query := `
		INSERT INTO reviews (id, booking_id, customer_id, customer_name, professional_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rv.ID, rv.BookingID, rv.CustomerID, rv.CustomerName, rv.ProfessionalID, rv.Rating, rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByBookingID obtiene la reseña de una reserva. Devuelve nil si no hay.
func (r *ReviewRepo) GetByBookingID(bookingID string) (*entity.Review, error) {
	query := `
		SELECT id, booking_id, customer_id, customer_name, professional_id, rating, comment, created_at
		FROM reviews WHERE booking_id = $1`
	var rv entity.Review
	err := r.q.QueryRow(context.Background(), query, bookingID).Scan(
		&rv.ID, &rv.BookingID, &rv.CustomerID, &rv.CustomerName, &rv.ProfessionalID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

// ListByProfessional reseñas del profesional, más recientes primero.
func (r *ReviewRepo) ListByProfessional(professionalID string, limit int) ([]*entity.Review, error) {
	query := `
		SELECT id, booking_id, customer_id, customer_name, professional_id, rating, comment, created_at
		FROM reviews WHERE professional_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, professionalID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.CustomerID, &rv.CustomerName, &rv.ProfessionalID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// AverageByProfessional promedio y conteo de ratings. AVG sobre cero filas
// devuelve 0 por el COALESCE.
func (r *ReviewRepo) AverageByProfessional(professionalID string) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews WHERE professional_id = $1`
	var (
		avg   decimal.Decimal
		total int
	)
	if err := r.q.QueryRow(context.Background(), query, professionalID).Scan(&avg, &total); err != nil {
		return decimal.Zero, 0, fmt.Errorf("average reviews: %w", err)
	}
	return avg.Round(2), total, nil
}
