package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

// CampaignUseCase defines the business operations of the campaign dashboard.
// Every operation is scoped to the calling brand: campaigns of other brands
// are reported as ErrNotFound.
type CampaignUseCase interface {
	// CreateDraft starts a new draft campaign, optionally seeded with an
	// overview.
	CreateDraft(ctx context.Context, brandID uuid.UUID, overview *domain.Overview) (*CampaignDetails, error)

	// GetCampaign returns a campaign together with its readiness.
	GetCampaign(ctx context.Context, brandID, id uuid.UUID) (*CampaignDetails, error)

	// ListCampaigns returns the brand's campaigns, optionally filtered by
	// status.
	ListCampaigns(ctx context.Context, req ListReq) ([]CampaignSummary, error)

	// SaveSection replaces one section of a campaign with the same section
	// of draft. Only draft and rejected campaigns may be edited.
	SaveSection(ctx context.Context, brandID, id uuid.UUID, section domain.SectionID, draft domain.Campaign) (*CampaignDetails, error)

	// EvaluateDraft computes readiness for an unsaved draft.
	EvaluateDraft(draft domain.Campaign) readiness.Readiness

	// PublishingCheck runs the publishing gate for a campaign.
	PublishingCheck(ctx context.Context, brandID, id uuid.UUID) (*readiness.PublishingCheck, error)

	// Publish submits a draft for approval. It returns a
	// *PublishBlockedError when the gate refuses.
	Publish(ctx context.Context, brandID, id uuid.UUID) (*domain.Campaign, error)

	// Transition moves a campaign along its lifecycle.
	Transition(ctx context.Context, brandID, id uuid.UUID, to domain.Status) (*domain.Campaign, error)

	// DeleteCampaign soft-deletes a campaign.
	DeleteCampaign(ctx context.Context, brandID, id uuid.UUID) (*domain.Campaign, error)
}

// CampaignDetails is a campaign with its computed readiness. It is a DTO
// used by the HTTP layer and does not contain domain behaviour.
type CampaignDetails struct {
	Campaign  domain.Campaign     `json:"campaign"`
	Readiness readiness.Readiness `json:"readiness"`
}

// CampaignSummary is one row of a campaign listing.
type CampaignSummary struct {
	ID              uuid.UUID                 `json:"id"`
	Title           string                    `json:"title"`
	Status          domain.Status             `json:"status"`
	CompletionCount readiness.CompletionCount `json:"completion_count"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

type ListReq struct {
	BrandID uuid.UUID
	Status  domain.Status
	Limit   int
	Offset  int
}
