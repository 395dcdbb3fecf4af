package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
)

// CampaignStore is what Seed needs to insert campaigns.
type CampaignStore interface {
	Create(ctx context.Context, c *domain.Campaign) error
}

// PaymentStore is what Seed needs to register payment methods.
type PaymentStore interface {
	AddPaymentMethod(ctx context.Context, brandID uuid.UUID, provider string) (uuid.UUID, error)
}

// SeedResult reports what Seed inserted.
type SeedResult struct {
	BrandID     uuid.UUID
	CampaignIDs []uuid.UUID
}

// Seed inserts a demo brand with a payment method and campaigns at every
// stage of completion: an empty draft, one draft per filled prefix of the
// sections and a draft ready to publish.
func Seed(ctx context.Context, campaigns CampaignStore, payments PaymentStore) (*SeedResult, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	brandID := uuid.New()

	if _, err := payments.AddPaymentMethod(ctx, brandID, "card"); err != nil {
		return nil, fmt.Errorf("seed payment method: %w", err)
	}

	res := &SeedResult{BrandID: brandID}
	for filled := 0; filled <= len(domain.Sections); filled++ {
		c := DemoCampaign(brandID, filled, r)
		if err := campaigns.Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("seed campaign %d: %w", filled, err)
		}
		res.CampaignIDs = append(res.CampaignIDs, c.ID)
	}
	return res, nil
}

// DemoCampaign returns a draft with the first filled sections completed.
func DemoCampaign(brandID uuid.UUID, filled int, r *rand.Rand) domain.Campaign {
	c := domain.NewDraft(brandID)
	for _, id := range domain.Sections[:min(filled, len(domain.Sections))] {
		fillSection(&c, id, r)
	}
	return c
}

func fillSection(c *domain.Campaign, id domain.SectionID, r *rand.Rand) {
	switch id {
	case domain.SectionOverview:
		title := fmt.Sprintf("Demo campaign %d", r.Intn(1000))
		desc := "Show how you style our new summer collection"
		c.Overview = domain.Overview{
			Title:       &title,
			Description: &desc,
			Objective:   domain.Objectives[r.Intn(len(domain.Objectives))],
			Platforms:   []domain.Platform{domain.Platforms[r.Intn(len(domain.Platforms))]},
			Category:    domain.Categories[r.Intn(len(domain.Categories))],
		}
	case domain.SectionBudget:
		total := float64(1000 + r.Intn(9000))
		rate := 1.5 + float64(r.Intn(300))/100
		start := domain.NewDate(time.Now().AddDate(0, 0, 7).Date())
		end := domain.NewDate(time.Now().AddDate(0, 1, 7).Date())
		deadline := domain.NewDate(time.Now().AddDate(0, 1, 0).Date())
		c.Budget = domain.Budget{
			TotalBudget:        &total,
			RateType:           domain.RatePerThousand,
			RateAmount:         &rate,
			StartDate:          &start,
			EndDate:            &end,
			SubmissionDeadline: &deadline,
		}
	case domain.SectionContent:
		clips := 1 + r.Intn(5)
		c.Content = domain.ContentRequirements{
			Deliverables: &domain.DeliverableQuantity{Clips: &clips},
			RequiredElements: &domain.RequiredElements{
				Hashtags: []string{"#ad", "#summerdrop"},
			},
		}
	case domain.SectionAudience:
		minAge, maxAge := 18, 24+r.Intn(20)
		c.Audience = domain.AudienceTargeting{
			Geography: []string{"US", "GB"},
			Languages: []string{"en"},
			AgeRange:  &domain.AgeRange{Min: &minAge, Max: &maxAge},
			Interests: []string{"fashion", "lifestyle"},
		}
	case domain.SectionCompliance:
		yes := true
		c.Compliance = domain.Compliance{
			UsageRights: domain.UsageRightsOptions[r.Intn(len(domain.UsageRightsOptions))],
			LegalConfirmations: &domain.LegalConfirmations{
				PlatformCompliant:  &yes,
				NoUnlicensedAssets: &yes,
			},
		}
	}
}
