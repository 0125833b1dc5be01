package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ repository.ServiceCategoryRepository = (*ServiceCategoryRepo)(nil)

// ServiceCategoryRepo catálogo de servicios sobre PostgreSQL.
type ServiceCategoryRepo struct {
	q Querier
}

func NewServiceCategoryRepository(q Querier) *ServiceCategoryRepo {
	return &ServiceCategoryRepo{q: q}
}

// Create inserta una categoría del catálogo.
func (r *ServiceCategoryRepo) Create(c *entity.ServiceCategory) error {
	query := `
		INSERT INTO service_categories (id, name, description, price_min, price_max, estimated_time, icon, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.PriceMin, c.PriceMax, c.EstimatedTime, c.Icon, c.Active, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría (activa o no). Devuelve nil si no existe.
func (r *ServiceCategoryRepo) GetByID(id string) (*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, description, price_min, price_max, estimated_time, icon, active, created_at
		FROM service_categories WHERE id = $1`
	var c entity.ServiceCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.PriceMin, &c.PriceMax, &c.EstimatedTime, &c.Icon, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListActive lista el catálogo público ordenado por nombre.
func (r *ServiceCategoryRepo) ListActive() ([]*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, description, price_min, price_max, estimated_time, icon, active, created_at
		FROM service_categories WHERE active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceCategory
	for rows.Next() {
		var c entity.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.PriceMin, &c.PriceMax, &c.EstimatedTime, &c.Icon, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
