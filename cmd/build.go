package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/ui"
	"github.com/PolarWolf314/pageseal/internal/workflows"
)

var (
	buildDryRun bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "assemble and seal without writing the artifact")
}

// resetBuildCommandState resets the build command's global state for testing.
func resetBuildCommandState() {
	buildDryRun = false
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the page and seal it with PASSWORD",
	Long: `Inlines the stylesheet and JSON payload into the template and writes a single
HTML file to the configured output path.

When PASSWORD is set the page is sealed: it carries only ciphertext and a
small script that asks for the passphrase and decrypts in the browser.

When PASSWORD is not set, the build either fails (mode = "required") or
writes the page unencrypted with a warning (mode = "optional", the default).

Examples:
  # Build a sealed page
  PASSWORD=hunter2 pageseal build

  # Check inputs and sizes without writing anything
  PASSWORD=hunter2 pageseal build --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting build command")
		spinner, cleanup := startSpinner("Building page...", verbose)
		defer cleanup()

		settings, err := loadSettings()
		if err != nil {
			spinner.FinalMSG = formatBuildError(err)
			return reported(err)
		}

		project := settings.Project
		Logger.Debugf("Template: %s, payload: %s, output: %s", project.Template, project.Payload, project.Output)
		Logger.Debugf("Mode: %s, iterations: %d", project.Mode, project.Iterations)

		if settings.Env.HasPassphrase() {
			Logger.Infof("PASSWORD is set, sealing with %d iterations", project.Iterations)
			spinner.Suffix = " Sealing page (this takes a few seconds)..."
		} else {
			Logger.Infof("PASSWORD is not set")
		}

		result, err := workflows.Build(cmd.Context(), workflows.BuildOptions{
			Settings: settings,
			DryRun:   buildDryRun,
		})
		if err != nil {
			Logger.Errorf("Build failed: %v", err)
			spinner.FinalMSG = formatBuildError(err)
			return reported(err)
		}
		Logger.Infof("Inlined stylesheet %s", result.Stylesheet)

		if result.Insecure {
			pauseSpinner(spinner)
			Logger.WarnfAlways("PASSWORD env var not set; writing unencrypted %s", settings.Abs(project.Output))
		}

		spinner.FinalMSG = formatBuildResult(result)
		return nil
	},
}

func formatBuildResult(result *workflows.BuildResult) string {
	var state string
	if result.Encrypted {
		state = "sealed with " + ui.Highlight.Sprint(fmt.Sprintf("%d", result.Iterations)) + " PBKDF2 iterations"
	} else {
		state = ui.Warning.Sprint("unencrypted")
	}

	if result.DryRun {
		return ui.Success.Sprint("✓") + " Dry run: " + ui.Path.Sprint(result.Output) + " would be " +
			ui.Size(result.Bytes) + ", " + state + "\n" +
			ui.Info.Sprint("→") + " No files were written"
	}

	message := ui.Success.Sprint("✓") + " Built " + ui.Path.Sprint(result.Output) + " " +
		ui.Muted.Sprint(ui.Size(result.Bytes)) + ", " + state
	if result.ID != "" {
		message += "\n" + ui.Info.Sprint("→") + " Build ID " + ui.Highlight.Sprint(result.ID)
	}
	if result.Insecure {
		message += "\n" + ui.Info.Sprint("→") + " Set " + ui.Code.Sprint("PASSWORD") + " to seal the page"
	}
	return message
}

func formatBuildError(err error) string {
	switch {
	case errors.Is(err, perrors.ErrMissingPassphrase):
		return ui.Error.Sprint("✗") + " PASSWORD is not set and this project requires an encrypted build\n" +
			ui.Info.Sprint("→") + " Export " + ui.Code.Sprint("PASSWORD") + " or set " + ui.Code.Sprint(`mode = "optional"`) + " in pageseal.toml"
	case errors.Is(err, perrors.ErrNoStylesheet):
		return ui.Error.Sprint("✗") + " No stylesheet found\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("pageseal sync-css") + " or check " + ui.Code.Sprint("css_sources") + " in pageseal.toml\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, perrors.ErrMissingInput):
		return ui.Error.Sprint("✗") + " Couldn't read a build input\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, perrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " Invalid configuration\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Build failed: " + err.Error()
	}
}
