package readiness

import (
	"time"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

// completeCampaign returns a campaign where every mandatory field is set.
func completeCampaign() *domain.Campaign {
	start := domain.NewDate(2026, time.June, 1)
	end := domain.NewDate(2026, time.June, 30)
	deadline := domain.NewDate(2026, time.June, 25)
	return &domain.Campaign{
		ID:      uuid.New(),
		BrandID: uuid.New(),
		Status:  domain.StatusDraft,
		Overview: domain.Overview{
			Title:       ptr("Summer Drop"),
			Description: ptr("Promote our new line"),
			Objective:   domain.ObjectiveAwareness,
			Platforms:   []domain.Platform{domain.PlatformTikTok},
			Category:    "fashion",
		},
		Budget: domain.Budget{
			TotalBudget:        ptr(5000.0),
			RateType:           domain.RatePerThousand,
			RateAmount:         ptr(2.5),
			StartDate:          &start,
			EndDate:            &end,
			SubmissionDeadline: &deadline,
		},
		Content: domain.ContentRequirements{
			Deliverables: &domain.DeliverableQuantity{Clips: ptr(3)},
		},
		Audience: domain.AudienceTargeting{
			Geography: []string{"US"},
			Languages: []string{"en"},
			AgeRange:  &domain.AgeRange{Min: ptr(18), Max: ptr(34)},
		},
		Compliance: domain.Compliance{
			UsageRights: domain.UsagePaidAds,
			LegalConfirmations: &domain.LegalConfirmations{
				PlatformCompliant:  ptr(true),
				NoUnlicensedAssets: ptr(true),
			},
		},
	}
}
