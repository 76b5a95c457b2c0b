// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test projects,
// capturing output, and running the CLI.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

// testIterations keeps key derivation fast in command tests.
const testIterations = 1000

// setupTestProject creates a project with the three build inputs and a
// pageseal.toml in a temp directory, and changes into it for the duration of
// the test. Extra TOML lines are appended to the config.
func setupTestProject(t *testing.T, extraConfig string) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html": `<html><head><link rel="stylesheet" href="ui_style.css"><!-- INLINE_CSS --></head>` +
			`<body><!-- INLINE_APPS_JSON --></body></html>`,
		"ui_style.css":  "body{color:red}",
		"apps.json":     `{"a":1}`,
		"pageseal.toml": "iterations = 1000\n" + extraConfig,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	chdir(t, dir)
	t.Setenv("PASSWORD", "")
	t.Setenv("PAGESEAL_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	return dir
}

// chdir changes into dir and restores the original working directory when
// the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change back to %s: %v", originalWd, err)
		}
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI resets global command state and runs pageseal with args, returning
// the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	t.Cleanup(ResetGlobalState)
	color.NoColor = true

	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}
