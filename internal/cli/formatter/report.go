package formatter

import (
	"fmt"
	"strings"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

const sectionBarWidth = 12

// navIcons maps readiness icon tokens to terminal glyphs.
var navIcons = map[string]string{
	readiness.NavIconComplete:   "✔",
	readiness.NavIconIncomplete: "!",
	readiness.NavIconPending:    "○",
}

// FormatReadiness renders the per-section breakdown, the overall completion
// count and the advisory warnings. The active section is highlighted.
func FormatReadiness(res readiness.Readiness, active domain.SectionID) string {
	var b strings.Builder
	b.WriteString(Header("Campaign readiness"))
	b.WriteString("\n")

	for _, s := range res.Sections {
		hint := readiness.NavHint(s, s.ID == active)
		icon := navIcons[hint.Icon]
		name := fmt.Sprintf("%-22s", s.Name)
		switch hint.Style {
		case readiness.NavStyleActive:
			name = StyleActive.Render(name)
		case readiness.NavStyleComplete:
			icon = StyleGreen.Render(icon)
		case readiness.NavStyleInProgress:
			icon = StyleYellow.Render(icon)
		default:
			icon = Dim(icon)
		}
		fmt.Fprintf(&b, "%s %s %s", icon, name, RenderProgress(s.Completed, s.Total, sectionBarWidth))
		if s.OptionalTotal > 0 {
			b.WriteString(Dim(fmt.Sprintf("  optional %d/%d", s.OptionalCompleted, s.OptionalTotal)))
		}
		b.WriteString("\n")
		for _, m := range s.Missing {
			fmt.Fprintf(&b, "    %s %s\n", StyleRed.Render("✗"), m.Message)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d/%d sections complete\n",
		Bold("Completion:"), res.CompletionCount.Completed, res.CompletionCount.Total)

	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Warnings"))
		b.WriteString("\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "%s %s %s\n", StyleYellow.Render("⚠"), Dim(string(w.Section)+"."+w.Field), w.Message)
		}
	}
	return b.String()
}

// FormatPublishingCheck renders the gate verdict. Validation errors are
// listed before the payment notice unless payment is the only blocker.
func FormatPublishingCheck(check readiness.PublishingCheck) string {
	var b strings.Builder
	b.WriteString(Header("Publishing"))
	b.WriteString("\n")

	switch check.Blocker() {
	case readiness.BlockerNone:
		b.WriteString(StyleGreen.Render("Ready to publish"))
		b.WriteString("\n")
		return b.String()
	case readiness.BlockerPaymentSetup:
		b.WriteString(StyleRed.Render("Add a payment method to publish this campaign"))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", StyleRed.Render(fmt.Sprintf("%d fields need attention", len(check.ValidationErrors))))
	for _, g := range check.Grouped() {
		fmt.Fprintf(&b, "  %s\n", Bold(g.SectionName))
		for _, e := range g.Errors {
			fmt.Fprintf(&b, "    %s %s\n", StyleRed.Render("✗"), e.Message)
		}
	}
	if check.MissingPaymentSetup {
		b.WriteString(Dim("A payment method is also required"))
		b.WriteString("\n")
	}
	return b.String()
}
