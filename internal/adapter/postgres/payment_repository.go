package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-desk/internal/core/port"
)

var _ port.BillingGateway = (*PaymentMethodRepository)(nil)

// PaymentMethodRepository answers payment-method questions from the
// payment_methods table that the billing service replicates into the
// dashboard database. It implements port.BillingGateway.
type PaymentMethodRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentMethodRepository returns a new repository instance.
func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{pool: pool}
}

// HasActivePaymentMethod reports whether the brand has at least one active,
// unexpired payment method.
func (r *PaymentMethodRepository) HasActivePaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
            SELECT 1 FROM payment_methods
            WHERE brand_id = $1
              AND status = 'active'
              AND (expires_at IS NULL OR expires_at > $2)
        )`, brandID, time.Now().UTC()).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// AddPaymentMethod records an active payment method for the brand. It is
// used by the demo seed.
func (r *PaymentMethodRepository) AddPaymentMethod(ctx context.Context, brandID uuid.UUID, provider string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `INSERT INTO payment_methods (id, brand_id, provider, status, created_at)
VALUES ($1,$2,$3,'active',now())`, id, brandID, provider)
	return id, err
}
