package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/ui"
	"github.com/PolarWolf314/pageseal/internal/utils"
	"github.com/PolarWolf314/pageseal/internal/workflows"
)

var syncCSSCmd = &cobra.Command{
	Use:   "sync-css",
	Short: "Copy the design system stylesheet into the project",
	Long: `Copies the design system stylesheet from its installed package location to
the vendored fallback used by builds, and to a static copy that records
where it came from.

Paths are configured in the [sync] section of pageseal.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting sync-css command")
		spinner, cleanup := startSpinner("Syncing design system CSS...", verbose)
		defer cleanup()

		settings, err := loadSettings()
		if err != nil {
			spinner.FinalMSG = formatSyncCSSError(err)
			return reported(err)
		}

		result, err := workflows.SyncCSS(cmd.Context(), workflows.SyncCSSOptions{Settings: settings})
		if err != nil {
			Logger.Errorf("Sync failed: %v", err)
			spinner.FinalMSG = formatSyncCSSError(err)
			return reported(err)
		}
		Logger.Infof("Copied %d bytes from %s", result.Bytes, result.Source)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Synced design system CSS " + ui.Muted.Sprint(ui.Size(result.Bytes)) + "\n" +
			"The following files were written: " + utils.FormatPaths(settings.Root, result.Written)
		return nil
	},
}

func formatSyncCSSError(err error) string {
	switch {
	case errors.Is(err, perrors.ErrMissingInput):
		return ui.Error.Sprint("✗") + " Design system stylesheet not found\n" +
			ui.Info.Sprint("→") + " Install the design system package, or set " + ui.Code.Sprint("sync.source") + " in pageseal.toml\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, perrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " Invalid configuration\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Sync failed: " + err.Error()
	}
}
