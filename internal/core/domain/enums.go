package domain

import "strings"

// Objective is the primary goal of a campaign.
type Objective string

const (
	ObjectiveAwareness   Objective = "awareness"
	ObjectiveEngagement  Objective = "engagement"
	ObjectiveConversions Objective = "conversions"
	ObjectiveAppInstalls Objective = "app_installs"
	ObjectiveUGC         Objective = "ugc"
)

// Objectives lists every known objective.
var Objectives = []Objective{
	ObjectiveAwareness, ObjectiveEngagement, ObjectiveConversions, ObjectiveAppInstalls, ObjectiveUGC,
}

// Platform is a social platform creators publish on.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
	PlatformFacebook  Platform = "facebook"
	PlatformSnapchat  Platform = "snapchat"
	PlatformTwitch    Platform = "twitch"
)

// Platforms lists every known platform.
var Platforms = []Platform{
	PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformX, PlatformFacebook, PlatformSnapchat, PlatformTwitch,
}

// Category is the product vertical of a campaign.
type Category string

// Categories lists every known category.
var Categories = []Category{
	"fashion", "beauty", "gaming", "tech", "food", "fitness", "travel",
	"music", "finance", "education", "lifestyle", "other",
}

// RateType is how creators are paid.
type RateType string

const (
	RatePerThousand RateType = "per_thousand"
	RateFixedFee    RateType = "fixed_fee"
	RateHybrid      RateType = "hybrid"
	RateCommission  RateType = "commission"
)

// RateTypes lists every known rate type.
var RateTypes = []RateType{RatePerThousand, RateFixedFee, RateHybrid, RateCommission}

// NeedsRateAmount reports whether a rate amount must accompany the rate type.
// Commission payouts are derived from sales and carry no fixed amount.
func (r RateType) NeedsRateAmount() bool {
	return r != RateCommission
}

// UsageRights describes how the brand may reuse creator content.
type UsageRights string

const (
	UsageOrganicOnly UsageRights = "organic_only"
	UsagePaidAds     UsageRights = "paid_ads"
	UsageLimitedTerm UsageRights = "limited_term"
	UsageFullBuyout  UsageRights = "full_buyout"
)

// UsageRightsOptions lists every known usage-rights option.
var UsageRightsOptions = []UsageRights{UsageOrganicOnly, UsagePaidAds, UsageLimitedTerm, UsageFullBuyout}

// Gender is an optional audience gender filter.
type Gender string

// Genders lists every known gender filter.
var Genders = []Gender{"all", "female", "male", "non_binary"}

// Known reports whether v, compared case-insensitively after trimming, is one
// of the allowed values.
func Known[T ~string](v T, allowed []T) bool {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(s, string(a)) {
			return true
		}
	}
	return false
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
