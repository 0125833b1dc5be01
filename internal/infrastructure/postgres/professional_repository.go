package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ repository.ProfessionalRepository = (*ProfessionalRepo)(nil)

// ProfessionalRepo perfiles profesionales sobre PostgreSQL.
// service_categories es text[] y availability jsonb.
type ProfessionalRepo struct {
	q Querier
}

func NewProfessionalRepository(q Querier) *ProfessionalRepo {
	return &ProfessionalRepo{q: q}
}

const professionalColumns = `user_id, service_categories, availability, verified, rating, total_reviews, earnings_total, created_at, updated_at`

// Create inserta el perfil del profesional (uno por usuario).
func (r *ProfessionalRepo) Create(p *entity.Professional) error {
	query := `
		INSERT INTO professionals (` + professionalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.UserID, p.ServiceCategories, p.Availability, p.Verified, p.Rating, p.TotalReviews, p.EarningsTotal,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert professional: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil. Devuelve nil si el usuario no tiene perfil.
func (r *ProfessionalRepo) GetByUserID(userID string) (*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE user_id = $1`
	var p entity.Professional
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.ServiceCategories, &p.Availability, &p.Verified, &p.Rating, &p.TotalReviews, &p.EarningsTotal,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return &p, nil
}

// Update actualiza categorías y disponibilidad del perfil.
func (r *ProfessionalRepo) Update(p *entity.Professional) error {
	query := `
		UPDATE professionals
		SET service_categories = $2, availability = $3, updated_at = $4
		WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.UserID, p.ServiceCategories, p.Availability, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update professional: %w", err)
	}
	return nil
}

// UpdateVerified marca/desmarca la verificación. Devuelve false si no hay perfil.
func (r *ProfessionalRepo) UpdateVerified(userID string, verified bool) (bool, error) {
	query := `UPDATE professionals SET verified = $2, updated_at = now() WHERE user_id = $1`
	tag, err := r.q.Exec(context.Background(), query, userID, verified)
	if err != nil {
		return false, fmt.Errorf("update verified: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRating escribe los agregados de reseñas. Llamar dentro de la
// transacción de creación de reseña.
func (r *ProfessionalRepo) UpdateRating(userID string, rating decimal.Decimal, totalReviews int) error {
	query := `UPDATE professionals SET rating = $2, total_reviews = $3, updated_at = now() WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, rating, totalReviews)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// List lista todos los perfiles (administración).
func (r *ProfessionalRepo) List() ([]*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Professional
	for rows.Next() {
		var p entity.Professional
		if err := rows.Scan(&p.UserID, &p.ServiceCategories, &p.Availability, &p.Verified, &p.Rating, &p.TotalReviews, &p.EarningsTotal, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
