package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a brand campaign record. A freshly created campaign is a
// draft whose sections are all empty; brands fill the sections one by one and
// publish the campaign for approval once every mandatory field is set.
//
// Every section field is optional until validated, so the same type doubles as
// the in-memory draft that the readiness engine evaluates.
type Campaign struct {
	ID          uuid.UUID           `json:"id"`
	BrandID     uuid.UUID           `json:"brand_id"`
	Status      Status              `json:"status"`
	Overview    Overview            `json:"overview"`
	Budget      Budget              `json:"budget"`
	Content     ContentRequirements `json:"content_requirements"`
	Audience    AudienceTargeting   `json:"audience_targeting"`
	Compliance  Compliance          `json:"compliance"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	SubmittedAt *time.Time          `json:"submitted_at,omitempty"`
}

// NewDraft returns an empty draft campaign owned by brandID.
func NewDraft(brandID uuid.UUID) Campaign {
	now := time.Now().UTC()
	return Campaign{
		ID:        uuid.New(),
		BrandID:   brandID,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanEdit reports whether the brand may still change the campaign sections.
func (c Campaign) CanEdit() bool {
	return c.Status == StatusDraft || c.Status == StatusRejected
}
