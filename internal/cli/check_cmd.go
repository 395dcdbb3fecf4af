package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"campaign-desk/internal/cli/formatter"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

// ErrNotPublishable is returned by check --strict when the gate refuses.
var ErrNotPublishable = errors.New("campaign is not ready to publish")

// staticPayments answers every payment lookup with the same value.
type staticPayments bool

func (s staticPayments) HasActivePaymentMethod(context.Context, uuid.UUID) (bool, error) {
	return bool(s), nil
}

func newCheckCmd(app *App) *cobra.Command {
	var (
		hasPayment bool
		active     string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Evaluate a campaign JSON file offline",
		Long: "Evaluate a campaign JSON file and print the section breakdown, " +
			"warnings and publishing verdict. Use - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activeID := domain.SectionID(active)
			if active != "" && !activeID.Valid() {
				return fmt.Errorf("unknown section %q", active)
			}

			c, err := readCampaign(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			agg := readiness.NewAggregator()
			gate := readiness.NewGate(agg, app.Logger)
			check, err := gate.Check(cmd.Context(), c, staticPayments(hasPayment))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatReadiness(agg.Aggregate(c), activeID))
			fmt.Fprint(out, formatter.FormatPublishingCheck(check))

			if strict && !check.CanPublish {
				return ErrNotPublishable
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&hasPayment, "payment-method", false, "Treat the brand as having an active payment method")
	cmd.Flags().StringVar(&active, "active", "", "Highlight this section as the open tab")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the campaign cannot be published")

	return cmd
}

func readCampaign(stdin io.Reader, path string) (*domain.Campaign, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening campaign file: %w", err)
		}
		defer f.Close()
		r = f
	}
	var c domain.Campaign
	if err := domain.DecodeDraft(r, &c); err != nil {
		return nil, fmt.Errorf("decoding campaign: %w", err)
	}
	return &c, nil
}
