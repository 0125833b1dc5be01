package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo reservas sobre PostgreSQL.
type BookingRepo struct {
	q Querier
}

func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

const bookingColumns = `id, customer_id, customer_name, customer_phone, professional_id, professional_name,
	service_category_id, service_name, address, scheduled_date, scheduled_time, status, created_at, updated_at`

// Create inserta una reserva.
func (r *BookingRepo) Create(b *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.CustomerID, b.CustomerName, b.CustomerPhone, b.ProfessionalID, b.ProfessionalName,
		b.ServiceCategoryID, b.ServiceName, b.Address, b.ScheduledDate, b.ScheduledTime, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva. Devuelve nil si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b entity.Booking
	err := r.q.QueryRow(context.Background(), query, id).Scan(bookingFields(&b)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// ListByCustomer reservas del cliente, más recientes primero.
func (r *BookingRepo) ListByCustomer(customerID string, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(query, customerID, limit)
}

// ListByProfessional reservas asignadas al profesional.
func (r *BookingRepo) ListByProfessional(professionalID string, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE professional_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(query, professionalID, limit)
}

// ListAll todas las reservas (administración).
func (r *BookingRepo) ListAll(limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`
	return r.list(query, limit)
}

// ListPendingByCategories bolsa de trabajos: pendientes cuya categoría está en el set.
func (r *BookingRepo) ListPendingByCategories(categoryIDs []string, limit int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'pending' AND service_category_id = ANY($1)
		ORDER BY created_at DESC LIMIT $2`
	return r.list(query, categoryIDs, limit)
}

// Assign asigna el profesional solo si la reserva sigue pendiente. La condición
// status='pending' en el UPDATE decide la carrera entre dos aceptaciones: el
// perdedor recibe false.
func (r *BookingRepo) Assign(bookingID, professionalID, professionalName, status string) (bool, error) {
	query := `
		UPDATE bookings
		SET professional_id = $2, professional_name = $3, status = $4, updated_at = now()
		WHERE id = $1 AND status = 'pending'`
	tag, err := r.q.Exec(context.Background(), query, bookingID, professionalID, professionalName, status)
	if err != nil {
		return false, fmt.Errorf("assign booking: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus cambia el estado. Devuelve false si la reserva no existe.
func (r *BookingRepo) UpdateStatus(bookingID, status string) (bool, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, bookingID, status)
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByProfessionalAndStatus cuenta reservas del profesional en un estado
// (trabajos completados para el cálculo de ganancias).
func (r *BookingRepo) CountByProfessionalAndStatus(professionalID, status string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE professional_id = $1 AND status = $2`
	var n int
	if err := r.q.QueryRow(context.Background(), query, professionalID, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *BookingRepo) list(query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
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

func bookingFields(b *entity.Booking) []any {
	return []any{
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.ProfessionalID, &b.ProfessionalName,
		&b.ServiceCategoryID, &b.ServiceName, &b.Address, &b.ScheduledDate, &b.ScheduledTime, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	}
}
