package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
	"campaign-desk/internal/core/readiness"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignUseCase provides the business logic of the campaign dashboard. It
// orchestrates the repository, the billing collaborator and the readiness
// engine to implement port.CampaignUseCase.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	billing port.BillingGateway
	logger  *slog.Logger

	agg  *readiness.Aggregator
	gate *readiness.Gate
}

// NewCampaignUseCase creates a use case over the given repository and
// billing gateway.
func NewCampaignUseCase(repo port.CampaignRepository, billing port.BillingGateway, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	agg := readiness.NewAggregator()
	return &CampaignUseCase{
		repo:    repo,
		billing: billing,
		logger:  logger,
		agg:     agg,
		gate:    readiness.NewGate(agg, logger),
	}
}

// CreateDraft starts an empty draft for the brand. When overview is given it
// becomes the draft's first saved section.
func (u *CampaignUseCase) CreateDraft(ctx context.Context, brandID uuid.UUID, overview *domain.Overview) (*port.CampaignDetails, error) {
	c := domain.NewDraft(brandID)
	if overview != nil {
		c.Overview = *overview
	}
	if err := u.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return u.details(&c), nil
}

// GetCampaign returns a campaign owned by the brand with its readiness.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, brandID, id uuid.UUID) (*port.CampaignDetails, error) {
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	return u.details(c), nil
}

// ListCampaigns returns the brand's campaigns with their completion counts.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, req port.ListReq) ([]port.CampaignSummary, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", port.ErrInvalidStatus, req.Status)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	campaigns, err := u.repo.List(ctx, port.CampaignFilter{
		BrandID: req.BrandID,
		Status:  req.Status,
		Limit:   limit,
		Offset:  max(req.Offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	out := make([]port.CampaignSummary, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		title := ""
		if c.Overview.Title != nil {
			title = strings.TrimSpace(*c.Overview.Title)
		}
		out = append(out, port.CampaignSummary{
			ID:              c.ID,
			Title:           title,
			Status:          c.Status,
			CompletionCount: u.agg.Aggregate(c).CompletionCount,
			UpdatedAt:       c.UpdatedAt,
		})
	}
	return out, nil
}

// SaveSection autosaves one section of an editable campaign and returns the
// recomputed readiness.
func (u *CampaignUseCase) SaveSection(ctx context.Context, brandID, id uuid.UUID, section domain.SectionID, draft domain.Campaign) (*port.CampaignDetails, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownSection, section)
	}
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if !c.CanEdit() {
		return nil, port.ErrNotEditable
	}
	c.CopySection(section, draft)
	c.UpdatedAt = time.Now().UTC()
	if err = u.repo.UpdateSection(ctx, c, section); err != nil {
		return nil, fmt.Errorf("save %s section: %w", section, err)
	}
	return u.details(c), nil
}

// EvaluateDraft computes readiness for a draft that has not been saved.
func (u *CampaignUseCase) EvaluateDraft(draft domain.Campaign) readiness.Readiness {
	return u.agg.Aggregate(&draft)
}

// PublishingCheck runs the publishing gate against the stored campaign.
func (u *CampaignUseCase) PublishingCheck(ctx context.Context, brandID, id uuid.UUID) (*readiness.PublishingCheck, error) {
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	check, err := u.gate.Check(ctx, c, u.billing)
	if err != nil {
		return nil, err
	}
	return &check, nil
}

// Publish submits a draft for approval. The gate is evaluated fresh; when it
// refuses, a *port.PublishBlockedError carrying the check is returned and the
// campaign stays in draft.
func (u *CampaignUseCase) Publish(ctx context.Context, brandID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: cannot publish a %s campaign", port.ErrInvalidTransition, c.Status)
	}
	check, err := u.gate.Check(ctx, c, u.billing)
	if err != nil {
		return nil, err
	}
	if !check.CanPublish {
		u.logger.Info("publish blocked",
			slog.String("campaign_id", id.String()),
			slog.String("blocker", string(check.Blocker())),
			slog.Int("validation_errors", len(check.ValidationErrors)))
		return nil, &port.PublishBlockedError{Check: check}
	}
	published, err := u.repo.UpdateStatus(ctx, id, domain.StatusDraft, domain.StatusPendingApproval)
	if err != nil {
		return nil, fmt.Errorf("publish campaign: %w", err)
	}
	if published == nil {
		return nil, port.ErrNotFound
	}
	return published, nil
}

// Transition moves a campaign along its lifecycle on behalf of the brand.
// Submitting for approval goes through Publish, and approval decisions are
// not the brand's to make.
func (u *CampaignUseCase) Transition(ctx context.Context, brandID, id uuid.UUID, to domain.Status) (*domain.Campaign, error) {
	switch to {
	case domain.StatusPendingApproval, domain.StatusApproved, domain.StatusRejected:
		return nil, fmt.Errorf("%w: %s is not a brand transition", port.ErrInvalidTransition, to)
	}
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, c, to)
}

// DeleteCampaign soft-deletes a campaign. Campaigns under review or live are
// cancelled instead of deleted.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, brandID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.load(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, c, domain.RemovalStatus(c.Status))
}

func (u *CampaignUseCase) transition(ctx context.Context, c *domain.Campaign, to domain.Status) (*domain.Campaign, error) {
	if !to.Valid() || !domain.CanTransition(c.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, c.Status, to)
	}
	updated, err := u.repo.UpdateStatus(ctx, c.ID, c.Status, to)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if updated == nil {
		return nil, port.ErrNotFound
	}
	u.logger.Info("campaign status changed",
		slog.String("campaign_id", c.ID.String()),
		slog.String("from", string(c.Status)),
		slog.String("to", string(to)))
	return updated, nil
}

// load fetches a campaign and hides campaigns of other brands.
func (u *CampaignUseCase) load(ctx context.Context, brandID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil || c.BrandID != brandID || c.Status == domain.StatusDeleted {
		return nil, port.ErrNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) details(c *domain.Campaign) *port.CampaignDetails {
	return &port.CampaignDetails{Campaign: *c, Readiness: u.agg.Aggregate(c)}
}
