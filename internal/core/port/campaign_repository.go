package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
)

// CampaignFilter narrows a campaign listing. A zero Status matches every
// status except the soft-deleted ones.
type CampaignFilter struct {
	BrandID uuid.UUID
	Status  domain.Status
	Limit   int
	Offset  int
}

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Writes are keyed by section so
// concurrent autosaves of different sections do not overwrite each other.
type CampaignRepository interface {
	// Create stores a new campaign.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns a campaign by id, or nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// List returns the campaigns matching filter, newest first.
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// UpdateSection persists one section of c and bumps its update time.
	UpdateSection(ctx context.Context, c *domain.Campaign, section domain.SectionID) error
	// UpdateStatus moves a campaign from one status to another. It returns
	// ErrStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) (*domain.Campaign, error)
}
