package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/ui"
	"github.com/PolarWolf314/pageseal/internal/utils"
	"github.com/PolarWolf314/pageseal/internal/workflows"
)

var (
	unsealOutput      string
	unsealMaxAttempts int
	unsealNoPrompt    bool
)

func init() {
	unsealCmd.Flags().StringVarP(&unsealOutput, "output", "o", "", "write the decrypted page to this file instead of stdout")
	unsealCmd.Flags().IntVar(&unsealMaxAttempts, "max-attempts", 3, "how often to prompt for the passphrase (0 for unlimited)")
	unsealCmd.Flags().BoolVar(&unsealNoPrompt, "no-prompt", false, "only try PASSWORD, never prompt")
}

// resetUnsealCommandState resets the unseal command's global state for testing.
func resetUnsealCommandState() {
	unsealOutput = ""
	unsealMaxAttempts = 3
	unsealNoPrompt = false
}

var unsealCmd = &cobra.Command{
	Use:   "unseal <artifact>",
	Short: "Decrypt a sealed page without a browser",
	Long: `Decrypts a page produced by 'pageseal build' the same way the page does in a
browser, and prints the original document.

The passphrase is taken from PASSWORD. If that is unset or wrong and a
terminal is available, you are prompted for it.

Use "-" to read the sealed page from stdin.

Examples:
  # Verify a build
  PASSWORD=hunter2 pageseal unseal dist/index.html -o /tmp/page.html

  # Prompt for the passphrase
  pageseal unseal dist/index.html > /tmp/page.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting unseal command")
		spinner, cleanup := startSpinner("Unsealing page...", verbose)
		defer cleanup()

		artifactPath := args[0]
		Logger.Debugf("Artifact: %s, output: %q", artifactPath, unsealOutput)

		settings, err := loadSettings()
		if err != nil {
			spinner.FinalMSG = formatUnsealError(err)
			return reported(err)
		}

		opts := workflows.UnsealOptions{
			Settings:     settings,
			ArtifactPath: artifactPath,
			OutputPath:   unsealOutput,
			MaxAttempts:  unsealMaxAttempts,
		}

		fromStdin := artifactPath == "-"
		if !unsealNoPrompt && (fromStdin || utils.IsTerminal()) {
			opts.Prompt = func(attempt int) ([]byte, error) {
				resume := pauseSpinner(spinner)
				defer resume()

				if attempt > 1 || settings.Env.HasPassphrase() {
					fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+perrors.ErrDecryptFailed.Error())
				}
				if fromStdin {
					return utils.ReadPassphraseFromTTY("Passphrase: ")
				}
				return utils.ReadPassphrase("Passphrase: ")
			}
		}

		result, err := workflows.Unseal(cmd.Context(), opts)
		if err != nil {
			Logger.Errorf("Unseal failed: %v", err)
			spinner.FinalMSG = formatUnsealError(err)
			return reported(err)
		}
		Logger.Infof("Unsealed after %d attempt(s), %d iterations", result.Attempts, result.Iterations)

		if result.OutputPath == "" {
			// The document goes to stdout, so nothing else may.
			pauseSpinner(spinner)
			if _, err := cmd.OutOrStdout().Write(result.Document); err != nil {
				return Logger.ErrorfAndReturn("Failed to write document: %v", err)
			}
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Unsealed page written to " + ui.Path.Sprint(result.OutputPath) + " " +
			ui.Muted.Sprint(ui.Size(len(result.Document))) + "\n" +
			ui.Warning.Sprint("⚠") + " This file is not encrypted. Don't publish it."
		return nil
	},
}

func formatUnsealError(err error) string {
	switch {
	case errors.Is(err, perrors.ErrMissingPassphrase):
		return ui.Error.Sprint("✗") + " No passphrase available\n" +
			ui.Info.Sprint("→") + " Set " + ui.Code.Sprint("PASSWORD") + " or run this command in a terminal"
	case errors.Is(err, perrors.ErrDecryptFailed):
		return ui.Error.Sprint("✗") + " Incorrect passphrase or corrupted page"
	case errors.Is(err, perrors.ErrInvalidArtifact):
		return ui.Error.Sprint("✗") + " This is not a page sealed by pageseal\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, perrors.ErrMissingInput):
		return ui.Error.Sprint("✗") + " Couldn't read the sealed page\n\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Unseal failed: " + err.Error()
	}
}
