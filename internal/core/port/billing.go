package port

import (
	"context"

	"github.com/google/uuid"
)

// BillingGateway is the billing collaborator. Only whether a brand has an
// active payment method matters to campaign publishing.
type BillingGateway interface {
	HasActivePaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error)
}
