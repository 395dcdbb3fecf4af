package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// createCampaignRequest is the optional overview a draft starts with. Only
// shape limits are enforced here; completeness is the readiness engine's job.
type createCampaignRequest struct {
	Title         *string           `json:"title" validate:"omitempty,max=200"`
	Description   *string           `json:"description" validate:"omitempty,max=5000"`
	Objective     domain.Objective  `json:"objective" validate:"omitempty,max=64"`
	Platforms     []domain.Platform `json:"platforms" validate:"omitempty,max=10,dive,max=64"`
	Category      domain.Category   `json:"category" validate:"omitempty,max=64"`
	BrandName     *string           `json:"brand_name" validate:"omitempty,max=200"`
	CoverImageURL *string           `json:"cover_image_url" validate:"omitempty,url"`
}

func (r createCampaignRequest) overview() *domain.Overview {
	return &domain.Overview{
		Title:         r.Title,
		Description:   r.Description,
		Objective:     r.Objective,
		Platforms:     r.Platforms,
		Category:      r.Category,
		BrandName:     r.BrandName,
		CoverImageURL: r.CoverImageURL,
	}
}

type listCampaignsQuery struct {
	Status string `validate:"omitempty,oneof=draft pending_approval approved rejected active paused completed cancelled deleted"`
	Limit  int    `validate:"gte=0,lte=200"`
	Offset int    `validate:"gte=0"`
}

type transitionRequest struct {
	Status domain.Status `json:"status" validate:"required,oneof=draft pending_approval approved rejected active paused completed cancelled deleted"`
}

// decodeJSON decodes the request body into dst. An empty body is reported as
// io.EOF so callers may treat it as optional. Fields of the wrong JSON type
// are left unset rather than rejecting the body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := domain.DecodeDraft(http.MaxBytesReader(w, r.Body, maxBodyBytes), dst); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func campaignID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// sectionTarget returns a pointer to section id of c for decoding a section
// payload into.
func sectionTarget(c *domain.Campaign, id domain.SectionID) (any, bool) {
	switch id {
	case domain.SectionOverview:
		return &c.Overview, true
	case domain.SectionBudget:
		return &c.Budget, true
	case domain.SectionContent:
		return &c.Content, true
	case domain.SectionAudience:
		return &c.Audience, true
	case domain.SectionCompliance:
		return &c.Compliance, true
	}
	return nil, false
}
