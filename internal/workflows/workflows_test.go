package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/pageseal/internal/configs"
)

const testIterations = 1000

// newTestProject lays out a project with the three build inputs in a temp
// directory and returns settings pointing at it.
func newTestProject(t *testing.T, password string) *configs.Settings {
	t.Helper()
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "index.html"),
		`<html><head><link rel="stylesheet" href="ui_style.css"><!-- INLINE_CSS --></head>`+
			`<body><!-- INLINE_APPS_JSON --></body></html>`)
	writeTestFile(t, filepath.Join(dir, "ui_style.css"), "body{color:red}")
	writeTestFile(t, filepath.Join(dir, "apps.json"), `{"a":1}`)

	project := configs.DefaultProjectConfig()
	project.Iterations = testIterations

	return &configs.Settings{
		Root:       dir,
		ConfigPath: filepath.Join(dir, configs.ConfigFileName),
		Project:    project,
		Env:        &configs.EnvConfig{Password: password},
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
