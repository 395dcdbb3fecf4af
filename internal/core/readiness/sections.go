package readiness

import "campaign-desk/internal/core/domain"

// Sections returns the registered sections in display order.
func Sections() []Section {
	return []Section{
		OverviewSection(),
		BudgetSection(),
		ContentSection(),
		AudienceSection(),
		ComplianceSection(),
	}
}

// OverviewSection describes what the campaign is.
func OverviewSection() Section {
	return Section{
		ID:   domain.SectionOverview,
		Name: "Overview",
		Mandatory: []Rule{
			{
				Field:   "title",
				Message: "Campaign title is required",
				Check:   func(c *domain.Campaign) bool { return HasText(c.Overview.Title) },
			},
			{
				Field:   "description",
				Message: "Campaign description is required",
				Check:   func(c *domain.Campaign) bool { return HasText(c.Overview.Description) },
			},
			{
				Field:   "objective",
				Message: "Campaign objective is required",
				Check:   func(c *domain.Campaign) bool { return OneOf(c.Overview.Objective, domain.Objectives) },
			},
			{
				Field:   "platforms",
				Message: "At least one platform is required",
				Check:   func(c *domain.Campaign) bool { return anyKnown(c.Overview.Platforms, domain.Platforms) },
			},
			{
				Field:   "category",
				Message: "Campaign category is required",
				Check:   func(c *domain.Campaign) bool { return OneOf(c.Overview.Category, domain.Categories) },
			},
		},
		Optional: []Rule{
			{Field: "brand_name", Check: func(c *domain.Campaign) bool { return HasText(c.Overview.BrandName) }},
			{Field: "cover_image_url", Check: func(c *domain.Campaign) bool { return HasText(c.Overview.CoverImageURL) }},
		},
	}
}

// BudgetSection covers money and timeline. The rate amount is only required
// for rate types paid out at a fixed amount.
func BudgetSection() Section {
	return Section{
		ID:   domain.SectionBudget,
		Name: "Budget & Timeline",
		Mandatory: []Rule{
			{
				Field:   "total_budget",
				Message: "Total budget is required",
				Check:   func(c *domain.Campaign) bool { return Positive(c.Budget.TotalBudget) },
			},
			{
				Field:   "rate_type",
				Message: "Rate type is required",
				Check:   func(c *domain.Campaign) bool { return OneOf(c.Budget.RateType, domain.RateTypes) },
			},
			{
				Field:   "rate_amount",
				Message: "Rate amount is required",
				Check:   func(c *domain.Campaign) bool { return Positive(c.Budget.RateAmount) },
				Applies: func(c *domain.Campaign) bool { return c.Budget.RateType.NeedsRateAmount() },
			},
			{
				Field:   "start_date",
				Message: "Start date is required",
				Check:   func(c *domain.Campaign) bool { return HasDate(c.Budget.StartDate) },
			},
			{
				Field:   "end_date",
				Message: "End date is required",
				Check:   func(c *domain.Campaign) bool { return HasDate(c.Budget.EndDate) },
			},
			{
				Field:   "submission_deadline",
				Message: "Submission deadline is required",
				Check:   func(c *domain.Campaign) bool { return HasDate(c.Budget.SubmissionDeadline) },
			},
		},
	}
}

// ContentSection is complete as soon as any deliverable count is positive.
func ContentSection() Section {
	return Section{
		ID:   domain.SectionContent,
		Name: "Content Requirements",
		Mandatory: []Rule{
			{
				Field:   "deliverable_quantity",
				Message: "At least one deliverable (clips, long videos or images) is required",
				Check: func(c *domain.Campaign) bool {
					d := c.Content.Deliverables
					return d != nil && AnyPositive(d.Clips, d.LongVideos, d.Images)
				},
			},
		},
		Optional: []Rule{
			{Field: "required_elements", Check: func(c *domain.Campaign) bool { return c.Content.RequiredElements.Any() }},
			{Field: "prohibited_content", Check: func(c *domain.Campaign) bool { return HasText(c.Content.ProhibitedContent) }},
			{Field: "tone_style", Check: func(c *domain.Campaign) bool { return HasText(c.Content.ToneStyle) }},
			{Field: "music_guidelines", Check: func(c *domain.Campaign) bool { return HasText(c.Content.MusicGuidelines) }},
			{Field: "example_references", Check: func(c *domain.Campaign) bool { return HasItems(c.Content.ExampleReferences) }},
		},
	}
}

// AudienceSection covers who the content targets.
func AudienceSection() Section {
	return Section{
		ID:   domain.SectionAudience,
		Name: "Audience Targeting",
		Mandatory: []Rule{
			{
				Field:   "target_geography",
				Message: "At least one target country is required",
				Check:   func(c *domain.Campaign) bool { return HasItems(c.Audience.Geography) },
			},
			{
				Field:   "target_languages",
				Message: "At least one target language is required",
				Check:   func(c *domain.Campaign) bool { return HasItems(c.Audience.Languages) },
			},
			{
				Field:   "target_age_range.min",
				Message: "Minimum target age is required",
				Check:   func(c *domain.Campaign) bool { return HasAgeMin(c.Audience.AgeRange) },
			},
			{
				Field:   "target_age_range.max",
				Message: "Maximum target age is required",
				Check:   func(c *domain.Campaign) bool { return HasAgeMax(c.Audience.AgeRange) },
			},
		},
		Optional: []Rule{
			{Field: "target_gender", Check: func(c *domain.Campaign) bool { return OneOf(c.Audience.Gender, domain.Genders) }},
			{Field: "audience_interests", Check: func(c *domain.Campaign) bool { return HasItems(c.Audience.Interests) }},
		},
	}
}

// ComplianceSection covers usage rights and the legal confirmations. The
// exclusivity terms stay optional even when exclusivity is enabled.
func ComplianceSection() Section {
	return Section{
		ID:   domain.SectionCompliance,
		Name: "Compliance",
		Mandatory: []Rule{
			{
				Field:   "usage_rights",
				Message: "Usage rights are required",
				Check:   func(c *domain.Campaign) bool { return OneOf(c.Compliance.UsageRights, domain.UsageRightsOptions) },
			},
			{
				Field:   "legal_confirmations.platform_compliant",
				Message: "Confirm the campaign complies with platform policies",
				Check: func(c *domain.Campaign) bool {
					lc := c.Compliance.LegalConfirmations
					return lc != nil && IsTrue(lc.PlatformCompliant)
				},
			},
			{
				Field:   "legal_confirmations.no_unlicensed_assets",
				Message: "Confirm the campaign uses no unlicensed assets",
				Check: func(c *domain.Campaign) bool {
					lc := c.Compliance.LegalConfirmations
					return lc != nil && IsTrue(lc.NoUnlicensedAssets)
				},
			},
		},
		Optional: []Rule{
			{Field: "exclusivity", Check: func(c *domain.Campaign) bool { return c.Compliance.Exclusivity.HasTerms() }},
		},
	}
}

func anyKnown[T ~string](items []T, allowed []T) bool {
	for _, v := range items {
		if OneOf(v, allowed) {
			return true
		}
	}
	return false
}
