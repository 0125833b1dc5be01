package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

var _ booking.ReviewTxRunner = (*ReviewTx)(nil)

// ReviewTx ejecuta la creación de reseña y la actualización del agregado del
// profesional en una sola transacción. Los repositorios que recibe el callback
// están atados a la tx, no al pool.
type ReviewTx struct {
	pool *pgxpool.Pool
}

func NewReviewTxRunner(pool *pgxpool.Pool) *ReviewTx {
	return &ReviewTx{pool: pool}
}

// Run abre la transacción, invoca fn con repos transaccionales y hace
// commit/rollback según el resultado.
func (t *ReviewTx) Run(ctx context.Context, fn func(reviewRepo repository.ReviewRepository, profRepo repository.ProfessionalRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewReviewRepository(tx), NewProfessionalRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
