package readiness

import "campaign-desk/internal/core/domain"

// Navigation style and icon tokens returned by NavHint.
const (
	NavStyleActive     = "active"
	NavStyleComplete   = "complete"
	NavStyleInProgress = "in-progress"
	NavStylePending    = "pending"

	NavIconComplete   = "check-circle"
	NavIconIncomplete = "alert-circle"
	NavIconPending    = "circle"
)

// CompletionCount is the number of complete sections out of all registered
// sections.
type CompletionCount struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Readiness is the aggregated state of a campaign across all sections.
type Readiness struct {
	CompletionCount CompletionCount `json:"completion_count"`
	Sections        []SectionResult `json:"sections"`
	Warnings        []Warning       `json:"warnings"`
}

// Status returns the result of one section.
func (r Readiness) Status(id domain.SectionID) (SectionResult, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionResult{}, false
}

// SectionStatus returns the section results keyed by section id.
func (r Readiness) SectionStatus() map[domain.SectionID]SectionResult {
	out := make(map[domain.SectionID]SectionResult, len(r.Sections))
	for _, s := range r.Sections {
		out[s.ID] = s
	}
	return out
}

// IsComplete reports whether every section is complete.
func (r Readiness) IsComplete() bool {
	return r.CompletionCount.Completed == r.CompletionCount.Total
}

// Aggregator runs a fixed set of sections against a campaign. It holds no
// state between calls.
type Aggregator struct {
	sections []Section
}

// NewAggregator returns an Aggregator over the given sections, or over the
// registered sections when none are given.
func NewAggregator(sections ...Section) *Aggregator {
	if len(sections) == 0 {
		sections = Sections()
	}
	return &Aggregator{sections: sections}
}

// Sections returns the sections the aggregator evaluates, in order.
func (a *Aggregator) Sections() []Section {
	return a.sections
}

// Aggregate evaluates every section against c.
func (a *Aggregator) Aggregate(c *domain.Campaign) Readiness {
	res := Readiness{
		CompletionCount: CompletionCount{Total: len(a.sections)},
		Sections:        make([]SectionResult, 0, len(a.sections)),
		Warnings:        Warnings(c),
	}
	for _, s := range a.sections {
		sr := s.Evaluate(c)
		if sr.IsCompleted {
			res.CompletionCount.Completed++
		}
		res.Sections = append(res.Sections, sr)
	}
	return res
}

// NavStyle holds the navigation tab tokens of one section.
type NavStyle struct {
	Style string `json:"style"`
	Icon  string `json:"icon"`
}

// NavHint returns the navigation tokens for a section tab. The active tab is
// always styled as active; the icon follows completion.
func NavHint(s SectionResult, active bool) NavStyle {
	var hint NavStyle
	switch {
	case s.IsCompleted:
		hint = NavStyle{Style: NavStyleComplete, Icon: NavIconComplete}
	case s.Completed > 0:
		hint = NavStyle{Style: NavStyleInProgress, Icon: NavIconIncomplete}
	default:
		hint = NavStyle{Style: NavStylePending, Icon: NavIconPending}
	}
	if active {
		hint.Style = NavStyleActive
	}
	return hint
}
