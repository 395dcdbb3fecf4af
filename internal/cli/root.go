package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-desk/internal/config"
)

// App holds what the commands share. Config is loaded once by main.
type App struct {
	Config config.Config
	Logger *slog.Logger
	Out    io.Writer
}

// NewRootCmd creates the top-level "campaignctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "campaignctl",
		Short:         "Campaign readiness and database tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if app.Out != nil {
		root.SetOut(app.Out)
	}

	root.AddCommand(
		newCheckCmd(app),
		newMigrateCmd(app),
		newSeedCmd(app),
	)
	return root
}
