package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        string
	}{
		{"empty", 0, 5, "0/5"},
		{"partial", 2, 5, "2/5"},
		{"complete", 5, 5, "5/5"},
		{"no fields", 0, 0, "0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.done, tt.total, 8)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "[")
		})
	}
}

func TestFormatReadiness(t *testing.T) {
	title := "Hi"
	c := domain.Campaign{Overview: domain.Overview{Title: &title}}
	res := readiness.NewAggregator().Aggregate(&c)

	out := FormatReadiness(res, domain.SectionBudget)
	assert.Contains(t, out, "CAMPAIGN READINESS")
	assert.Contains(t, out, "Campaign description is required")
	assert.NotContains(t, out, "Campaign title is required")
	assert.Contains(t, out, "0/5 sections complete")
	assert.Contains(t, out, "WARNINGS")
}

func TestFormatPublishingCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		out := FormatPublishingCheck(readiness.PublishingCheck{CanPublish: true, HasPaymentMethod: true})
		assert.Contains(t, out, "Ready to publish")
	})

	t.Run("payment only", func(t *testing.T) {
		out := FormatPublishingCheck(readiness.PublishingCheck{MissingPaymentSetup: true})
		assert.Contains(t, out, "Add a payment method")
	})

	t.Run("validation first", func(t *testing.T) {
		out := FormatPublishingCheck(readiness.PublishingCheck{
			MissingPaymentSetup: true,
			ValidationErrors: []readiness.ValidationError{
				{Section: domain.SectionBudget, SectionName: "Budget", Field: "total_budget", Message: "Total budget is required"},
			},
		})
		assert.Contains(t, out, "1 fields need attention")
		assert.Contains(t, out, "Total budget is required")
		assert.Contains(t, out, "A payment method is also required")
		assert.NotContains(t, out, "Add a payment method to publish")
	})
}
