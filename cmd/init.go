package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/ui"
	"github.com/PolarWolf314/pageseal/internal/workflows"
)

var (
	initMode  string
	initForce bool
)

func init() {
	initCmd.Flags().StringVar(&initMode, "mode", string(configs.ModeOptional), `what build does without PASSWORD: "optional" or "required"`)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing pageseal.toml")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initMode = string(configs.ModeOptional)
	initForce = false
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a pageseal.toml with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Writing pageseal.toml...", verbose)
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			Mode:  configs.Mode(initMode),
			Force: initForce,
		})
		if err != nil {
			spinner.FinalMSG = formatInitError(err)
			return reported(err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(result.ConfigPath) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("pageseal build") + " to build " + ui.Path.Sprint(result.Config.Output)
		return nil
	},
}

func formatInitError(err error) string {
	switch {
	case errors.Is(err, perrors.ErrAlreadyInitialized):
		return ui.Error.Sprint("✗") + " pageseal.toml already exists\n" +
			ui.Info.Sprint("→") + " Use " + ui.Code.Sprint("--force") + " to overwrite it"
	case errors.Is(err, perrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " Invalid option\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Init failed: " + err.Error()
	}
}
