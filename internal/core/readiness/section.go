package readiness

import "campaign-desk/internal/core/domain"

// Field style tokens returned by FieldStyle.
const (
	FieldStyleDefault = "field-default"
	FieldStyleError   = "field-error"
)

// Rule is one row of a section's rule table. Check reports whether the field
// is present and valid. Applies, when set, limits the rule to campaigns where
// the field is relevant at all; an inapplicable rule is left out of the
// section totals.
type Rule struct {
	Field   string
	Message string
	Check   func(c *domain.Campaign) bool
	Applies func(c *domain.Campaign) bool
}

func (r Rule) applies(c *domain.Campaign) bool {
	return r.Applies == nil || safely(r.Applies, c)
}

func (r Rule) passes(c *domain.Campaign) bool {
	return safely(r.Check, c)
}

// safely evaluates fn and reports a panic as a failed check.
func safely(fn func(*domain.Campaign) bool, c *domain.Campaign) (ok bool) {
	if fn == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn(c)
}

// FieldError describes one unmet mandatory field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Section is a named group of campaign fields with a mandatory rule table and
// an optional one. Optional rules only feed the progress counters.
type Section struct {
	ID        domain.SectionID
	Name      string
	Mandatory []Rule
	Optional  []Rule
}

// SectionResult is the outcome of evaluating a section. Completed and Total
// count applicable mandatory rules only.
type SectionResult struct {
	ID                domain.SectionID `json:"id"`
	Name              string           `json:"name"`
	Completed         int              `json:"completed"`
	Total             int              `json:"total"`
	IsCompleted       bool             `json:"is_completed"`
	Missing           []FieldError     `json:"missing"`
	OptionalCompleted int              `json:"optional_completed"`
	OptionalTotal     int              `json:"optional_total"`
}

// Evaluate runs the section's rule tables against c. A nil campaign is
// evaluated as an empty draft.
func (s Section) Evaluate(c *domain.Campaign) SectionResult {
	if c == nil {
		c = &domain.Campaign{}
	}
	res := SectionResult{ID: s.ID, Name: s.Name, Missing: []FieldError{}}
	for _, rule := range s.Mandatory {
		if !rule.applies(c) {
			continue
		}
		res.Total++
		if rule.passes(c) {
			res.Completed++
			continue
		}
		res.Missing = append(res.Missing, FieldError{Field: rule.Field, Message: rule.Message})
	}
	for _, rule := range s.Optional {
		if !rule.applies(c) {
			continue
		}
		res.OptionalTotal++
		if rule.passes(c) {
			res.OptionalCompleted++
		}
	}
	res.IsCompleted = res.Completed == res.Total
	return res
}

// MissingFields returns one entry per failing mandatory rule.
func (r SectionResult) MissingFields() []FieldError {
	return r.Missing
}

// Ratio returns the completion ratio of the mandatory fields in [0,1].
func (r SectionResult) Ratio() float64 {
	if r.Total == 0 {
		return 1
	}
	return float64(r.Completed) / float64(r.Total)
}

// FieldStyle selects the input style token for a field.
func FieldStyle(hasError bool) string {
	if hasError {
		return FieldStyleError
	}
	return FieldStyleDefault
}
