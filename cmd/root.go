package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/PolarWolf314/pageseal/internal/logging"
	"github.com/PolarWolf314/pageseal/internal/ui"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "pageseal",
		Short: "Build password-protected, self-decrypting HTML pages",
		Long: `pageseal inlines a stylesheet and a JSON payload into an HTML template and,
when PASSWORD is set, seals the result into a single page that decrypts
itself in the browser.

The passphrase is only ever read from the PASSWORD environment variable.
Nothing is sent to a server: the sealed page derives the key with PBKDF2
and decrypts with AES-GCM entirely in the browser.

Examples:
  # Build dist/index.html, sealed when PASSWORD is set
  PASSWORD=hunter2 pageseal build

  # Refresh the vendored design system stylesheet
  pageseal sync-css

  # Check a sealed page without a browser
  pageseal unseal dist/index.html -o /tmp/page.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("pageseal", "small", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("pageseal --help") + " to see available commands")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to pageseal.toml (default: search upwards, or $PAGESEAL_CONFIG)")

	RootCmd.AddCommand(buildCmd)
	RootCmd.AddCommand(syncCSSCmd)
	RootCmd.AddCommand(unsealCmd)
	RootCmd.AddCommand(initCmd)
}

// Execute runs the root command, cancelling in-flight work on interrupt.
// Errors whose diagnostic was already printed are not printed again.
func Execute() error {
	ctx, stop := interruptContext(context.Background())
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	var shown *reportedError
	if err != nil && !errors.As(err, &shown) {
		Logger.Errorf("%v", err)
	}
	return err
}

// interruptContext returns a context cancelled by the first interrupt. The
// handler is released once ctx is done so a second interrupt terminates the
// process, including during key derivation, which does not observe ctx.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

// reportedError marks an error whose diagnostic the command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	resetBuildCommandState()
	resetUnsealCommandState()
	resetInitCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState clears Changed on every flag so one test's arguments
// don't leak into the next.
func resetCobraFlagState() {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(reset)
	for _, sub := range RootCmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}
