package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// capture redirects stdout and stderr for the duration of fn.
func capture(t *testing.T, fn func()) (string, string) {
	t.Helper()
	color.NoColor = true

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, _ := os.Pipe()
	errR, errW, _ := os.Pipe()
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var outBuf, errBuf bytes.Buffer
	_, _ = io.Copy(&outBuf, outR)
	_, _ = io.Copy(&errBuf, errR)
	return outBuf.String(), errBuf.String()
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
	}{
		{"Quiet", Logger{}, false, false},
		{"Verbose", Logger{Verbose: true}, true, false},
		{"Debug", Logger{Debug: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := capture(t, func() {
				tt.logger.Infof("info %d", 1)
				tt.logger.Debugf("debug %d", 2)
			})
			if got := strings.Contains(stdout, "[info] info 1"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v (output %q)", got, tt.wantInfo, stdout)
			}
			if got := strings.Contains(stdout, "[debug] debug 2"); got != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v (output %q)", got, tt.wantDebug, stdout)
			}
		})
	}
}

func TestWarningsAlwaysShown(t *testing.T) {
	_, stderr := capture(t, func() {
		Logger{}.Warnf("careful")
		Logger{}.WarnfAlways("writing unencrypted %s", "dist/index.html")
	})
	if !strings.Contains(stderr, "[warn] careful") {
		t.Errorf("expected warn output, got %q", stderr)
	}
	if !strings.Contains(stderr, "writing unencrypted dist/index.html") {
		t.Errorf("expected WarnfAlways output, got %q", stderr)
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var err error
	_, stderr := capture(t, func() {
		err = Logger{}.ErrorfAndReturn("build failed: %s", "boom")
	})
	if err == nil || err.Error() != "build failed: boom" {
		t.Fatalf("ErrorfAndReturn() = %v, want 'build failed: boom'", err)
	}
	if !strings.Contains(stderr, "[error] build failed: boom") {
		t.Errorf("expected error output, got %q", stderr)
	}
}
