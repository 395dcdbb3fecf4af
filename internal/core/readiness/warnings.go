package readiness

import "campaign-desk/internal/core/domain"

// Soft length thresholds shown as hints while editing the overview.
const (
	MinTitleLength       = 5
	MinDescriptionLength = 10
)

// Warning is an advisory finding. Warnings never block section completion or
// publishing.
type Warning struct {
	Section domain.SectionID `json:"section"`
	Field   string           `json:"field"`
	Message string           `json:"message"`
}

// Warnings returns the advisory findings for c in section order.
func Warnings(c *domain.Campaign) []Warning {
	if c == nil {
		return []Warning{}
	}
	out := []Warning{}
	add := func(section domain.SectionID, field, msg string) {
		out = append(out, Warning{Section: section, Field: field, Message: msg})
	}

	if t := c.Overview.Title; HasText(t) && !HasTextMin(t, MinTitleLength) {
		add(domain.SectionOverview, "title", "Campaign title should be at least 5 characters")
	}
	if d := c.Overview.Description; HasText(d) && !HasTextMin(d, MinDescriptionLength) {
		add(domain.SectionOverview, "description", "Campaign description should be at least 10 characters")
	}

	b := c.Budget
	if HasDate(b.StartDate) && HasDate(b.EndDate) && b.StartDate.After(b.EndDate.Time) {
		add(domain.SectionBudget, "end_date", "End date is before the start date")
	}
	if HasDate(b.SubmissionDeadline) && HasDate(b.EndDate) && b.SubmissionDeadline.After(b.EndDate.Time) {
		add(domain.SectionBudget, "submission_deadline", "Submission deadline is after the end date")
	}
	if HasDate(b.SubmissionDeadline) && HasDate(b.StartDate) && b.SubmissionDeadline.Before(b.StartDate.Time) {
		add(domain.SectionBudget, "submission_deadline", "Submission deadline is before the start date")
	}

	if r := c.Audience.AgeRange; HasAgeRange(r) && *r.Min > *r.Max {
		add(domain.SectionAudience, "target_age_range", "Minimum age is greater than maximum age")
	}

	if e := c.Compliance.Exclusivity; e != nil && e.Enabled && !e.HasTerms() {
		add(domain.SectionCompliance, "exclusivity", "Exclusivity is enabled but no exclusivity terms are set")
	}
	return out
}
