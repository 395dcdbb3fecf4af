package readiness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
)

// PaymentChecker answers whether a brand has an active payment method.
type PaymentChecker interface {
	HasActivePaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error)
}

// ValidationError is one blocking error in the publishing report, tagged with
// the section it belongs to.
type ValidationError struct {
	Section     domain.SectionID `json:"section"`
	SectionName string           `json:"section_name"`
	Field       string           `json:"field"`
	Message     string           `json:"message"`
}

// ErrorGroup is the validation errors of one section, for display.
type ErrorGroup struct {
	Section     domain.SectionID  `json:"section"`
	SectionName string            `json:"section_name"`
	Errors      []ValidationError `json:"errors"`
}

// Blocker names what keeps a campaign from being published.
type Blocker string

const (
	BlockerNone         Blocker = ""
	BlockerPaymentSetup Blocker = "payment_setup"
	BlockerValidation   Blocker = "validation"
)

// PublishingCheck is the outcome of a publishing gate evaluation.
type PublishingCheck struct {
	CanPublish          bool              `json:"can_publish"`
	HasPaymentMethod    bool              `json:"has_payment_method"`
	MissingPaymentSetup bool              `json:"missing_payment_setup"`
	ValidationErrors    []ValidationError `json:"validation_errors"`
}

// Blocker applies the display precedence: payment setup is offered directly
// only when it is the sole blocker, otherwise field errors come first.
func (p PublishingCheck) Blocker() Blocker {
	if p.MissingPaymentSetup && len(p.ValidationErrors) == 0 {
		return BlockerPaymentSetup
	}
	if len(p.ValidationErrors) > 0 {
		return BlockerValidation
	}
	return BlockerNone
}

// Grouped returns the validation errors grouped by section, keeping the
// section order of the flat list.
func (p PublishingCheck) Grouped() []ErrorGroup {
	groups := []ErrorGroup{}
	for _, ve := range p.ValidationErrors {
		n := len(groups)
		if n == 0 || groups[n-1].Section != ve.Section {
			groups = append(groups, ErrorGroup{Section: ve.Section, SectionName: ve.SectionName})
			n++
		}
		groups[n-1].Errors = append(groups[n-1].Errors, ve)
	}
	return groups
}

// Gate decides whether a draft may be submitted for approval.
type Gate struct {
	agg    *Aggregator
	logger *slog.Logger
}

// NewGate returns a gate evaluating the aggregator's sections. A nil
// aggregator uses the registered sections.
func NewGate(agg *Aggregator, logger *slog.Logger) *Gate {
	if agg == nil {
		agg = NewAggregator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{agg: agg, logger: logger}
}

// ValidationErrors returns every missing mandatory field of c as one flat
// list in section order.
func (g *Gate) ValidationErrors(c *domain.Campaign) []ValidationError {
	out := []ValidationError{}
	for _, s := range g.agg.Sections() {
		res := s.Evaluate(c)
		for _, fe := range res.MissingFields() {
			out = append(out, ValidationError{
				Section:     s.ID,
				SectionName: s.Name,
				Field:       fe.Field,
				Message:     fe.Message,
			})
		}
	}
	return out
}

// Check evaluates the campaign and looks up its brand's payment method. A
// failed lookup counts as no payment method. If ctx ends before the lookup
// returns, the result is discarded and ctx's error is returned.
func (g *Gate) Check(ctx context.Context, c *domain.Campaign, payments PaymentChecker) (PublishingCheck, error) {
	if c == nil {
		c = &domain.Campaign{}
	}
	check := PublishingCheck{ValidationErrors: g.ValidationErrors(c)}

	has, err := g.lookupPayment(ctx, c.BrandID, payments)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return PublishingCheck{}, ctxErr
	}
	if err != nil {
		g.logger.Warn("payment method lookup failed",
			slog.String("brand_id", c.BrandID.String()),
			slog.Any("error", err))
		has = false
	}

	check.HasPaymentMethod = has
	check.MissingPaymentSetup = !has
	check.CanPublish = len(check.ValidationErrors) == 0 && has
	return check, nil
}

type lookupResult struct {
	has bool
	err error
}

// lookupPayment returns as soon as ctx ends. The lookup goroutine keeps
// running until the checker returns, so checkers must honour ctx; the
// buffered channel lets a late result be dropped without blocking.
func (g *Gate) lookupPayment(ctx context.Context, brandID uuid.UUID, payments PaymentChecker) (bool, error) {
	if payments == nil {
		return false, fmt.Errorf("no payment checker configured")
	}
	done := make(chan lookupResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- lookupResult{err: fmt.Errorf("payment lookup panic: %v", r)}
			}
		}()
		has, err := payments.HasActivePaymentMethod(ctx, brandID)
		done <- lookupResult{has: has, err: err}
	}()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case r := <-done:
		return r.has, r.err
	}
}
