package domain

// SectionID identifies one logical group of campaign fields.
type SectionID string

const (
	SectionOverview   SectionID = "overview"
	SectionBudget     SectionID = "budget"
	SectionContent    SectionID = "content"
	SectionAudience   SectionID = "audience"
	SectionCompliance SectionID = "compliance"
)

// Sections lists every section in display order.
var Sections = []SectionID{
	SectionOverview,
	SectionBudget,
	SectionContent,
	SectionAudience,
	SectionCompliance,
}

// Valid reports whether id names a known section.
func (id SectionID) Valid() bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Overview describes what the campaign is about.
type Overview struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Objective     Objective  `json:"objective,omitempty"`
	Platforms     []Platform `json:"platforms,omitempty"`
	Category      Category   `json:"category,omitempty"`
	BrandName     *string    `json:"brand_name,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
}

// Budget holds the money and timeline of a campaign. Amounts are in the
// brand's billing currency.
type Budget struct {
	TotalBudget        *float64 `json:"total_budget,omitempty"`
	RateType           RateType `json:"rate_type,omitempty"`
	RateAmount         *float64 `json:"rate_amount,omitempty"`
	StartDate          *Date    `json:"start_date,omitempty"`
	EndDate            *Date    `json:"end_date,omitempty"`
	SubmissionDeadline *Date    `json:"submission_deadline,omitempty"`
}

// ContentRequirements describes what creators must deliver.
type ContentRequirements struct {
	Deliverables      *DeliverableQuantity `json:"deliverable_quantity,omitempty"`
	RequiredElements  *RequiredElements    `json:"required_elements,omitempty"`
	ProhibitedContent *string              `json:"prohibited_content,omitempty"`
	ToneStyle         *string              `json:"tone_style,omitempty"`
	MusicGuidelines   *string              `json:"music_guidelines,omitempty"`
	ExampleReferences []string             `json:"example_references,omitempty"`
}

// DeliverableQuantity counts the pieces of content expected per creator.
type DeliverableQuantity struct {
	Clips      *int `json:"clips,omitempty"`
	LongVideos *int `json:"long_videos,omitempty"`
	Images     *int `json:"images,omitempty"`
}

// RequiredElements are the things each deliverable must contain. Every field
// is independently optional.
type RequiredElements struct {
	Hashtags      []string `json:"hashtags,omitempty"`
	Mentions      []string `json:"mentions,omitempty"`
	Links         []string `json:"links,omitempty"`
	CallToAction  *string  `json:"call_to_action,omitempty"`
	BrandingNotes *string  `json:"branding_notes,omitempty"`
}

// Any reports whether at least one element is specified.
func (r *RequiredElements) Any() bool {
	if r == nil {
		return false
	}
	return len(r.Hashtags) > 0 || len(r.Mentions) > 0 || len(r.Links) > 0 ||
		nonBlank(r.CallToAction) || nonBlank(r.BrandingNotes)
}

// AudienceTargeting describes who the campaign content is meant for.
type AudienceTargeting struct {
	Geography []string  `json:"target_geography,omitempty"`
	Languages []string  `json:"target_languages,omitempty"`
	AgeRange  *AgeRange `json:"target_age_range,omitempty"`
	Gender    Gender    `json:"target_gender,omitempty"`
	Interests []string  `json:"audience_interests,omitempty"`
}

// AgeRange is an inclusive audience age range.
type AgeRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Compliance holds the legal terms of a campaign.
type Compliance struct {
	UsageRights        UsageRights         `json:"usage_rights,omitempty"`
	Exclusivity        *Exclusivity        `json:"exclusivity,omitempty"`
	LegalConfirmations *LegalConfirmations `json:"legal_confirmations,omitempty"`
}

// Exclusivity restricts what creators may publish for other brands while the
// campaign runs.
type Exclusivity struct {
	Enabled           bool `json:"enabled"`
	NoCompetingBrands bool `json:"no_competing_brands,omitempty"`
	CategoryExclusive bool `json:"category_exclusive,omitempty"`
	DurationDays      *int `json:"duration_days,omitempty"`
}

// HasTerms reports whether any exclusivity sub-flag is set.
func (e *Exclusivity) HasTerms() bool {
	if e == nil {
		return false
	}
	return e.NoCompetingBrands || e.CategoryExclusive || (e.DurationDays != nil && *e.DurationDays > 0)
}

// LegalConfirmations are statements the brand must explicitly agree to.
type LegalConfirmations struct {
	PlatformCompliant  *bool `json:"platform_compliant,omitempty"`
	NoUnlicensedAssets *bool `json:"no_unlicensed_assets,omitempty"`
}

// CopySection replaces section id of c with the same section of from. It
// reports false for an unknown section.
func (c *Campaign) CopySection(id SectionID, from Campaign) bool {
	switch id {
	case SectionOverview:
		c.Overview = from.Overview
	case SectionBudget:
		c.Budget = from.Budget
	case SectionContent:
		c.Content = from.Content
	case SectionAudience:
		c.Audience = from.Audience
	case SectionCompliance:
		c.Compliance = from.Compliance
	default:
		return false
	}
	return true
}

// SectionValue returns the value of section id of c.
func (c Campaign) SectionValue(id SectionID) (any, bool) {
	switch id {
	case SectionOverview:
		return c.Overview, true
	case SectionBudget:
		return c.Budget, true
	case SectionContent:
		return c.Content, true
	case SectionAudience:
		return c.Audience, true
	case SectionCompliance:
		return c.Compliance, true
	}
	return nil, false
}
