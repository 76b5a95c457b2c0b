package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/PolarWolf314/pageseal/internal/configs"
	"github.com/PolarWolf314/pageseal/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// pauseSpinner stops the spinner for terminal interaction and returns a
// function that resumes it.
func pauseSpinner(s *spinner.Spinner) func() {
	if verbose || debug {
		return func() {}
	}
	s.Stop()
	return s.Start
}

// loadSettings loads the project settings honouring --config.
func loadSettings() (*configs.Settings, error) {
	Logger.Debugf("Loading settings (config flag: %q)", configPath)
	settings, err := configs.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Project root: %s, config: %s", settings.Root, settings.ConfigPath)
	return settings, nil
}
