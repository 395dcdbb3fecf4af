package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-desk/internal/adapter/postgres"
	"campaign-desk/internal/db"
)

func newMigrateCmd(app *App) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := app.Config.Psql.Addr.String()
			if down {
				if err := db.Rollback(addr); err != nil {
					return fmt.Errorf("rolling back: %w", err)
				}
				app.Logger.Info("migrations rolled back")
				return nil
			}
			version, err := db.Migrate(addr)
			if err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			app.Logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Revert all migrations instead of applying them")

	return cmd
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo brand with a payment method and draft campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), app.Config.Psql)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer pool.Close()

			res, err := db.Seed(cmd.Context(),
				postgres.NewCampaignRepository(pool),
				postgres.NewPaymentMethodRepository(pool))
			if err != nil {
				return err
			}
			app.Logger.Info("seeded demo data",
				slog.String("brand_id", res.BrandID.String()),
				slog.Int("campaigns", len(res.CampaignIDs)))
			fmt.Fprintln(cmd.OutOrStdout(), res.BrandID)
			return nil
		},
	}
}
