package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCurrentIdentity(t *testing.T) {
	id := CurrentIdentity()
	if id.Host == "" {
		t.Error("Expected non-empty host")
	}
	if id.User == "" && os.Getenv("USER") != "" {
		t.Error("Expected user to fall back to USER")
	}
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("PAGESEAL_TEST_A", "")
	t.Setenv("PAGESEAL_TEST_B", "bob")

	if got := firstEnv("PAGESEAL_TEST_A", "PAGESEAL_TEST_B"); got != "bob" {
		t.Errorf("firstEnv() = %q, want %q", got, "bob")
	}
	if got := firstEnv("PAGESEAL_TEST_A"); got != "" {
		t.Errorf("firstEnv() = %q, want empty", got)
	}
}

// chdir switches into dir for the rest of the test.
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
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("FindsMarkerInParent", func(t *testing.T) {
		root, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("EvalSymlinks failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(root, "pageseal.toml"), nil, 0644); err != nil {
			t.Fatalf("Failed to write marker: %v", err)
		}
		nested := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatalf("Failed to create nested dir: %v", err)
		}
		chdir(t, nested)

		got, err := FindProjectRoot("pageseal.toml")
		if err != nil {
			t.Fatalf("FindProjectRoot failed: %v", err)
		}
		if got != root {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("IgnoresDirectoryWithMarkerName", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, "pageseal-marker-dir.toml"), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		chdir(t, root)

		got, err := FindProjectRoot("pageseal-marker-dir.toml")
		if err != nil {
			t.Fatalf("FindProjectRoot failed: %v", err)
		}
		if got != "" {
			t.Errorf("FindProjectRoot() = %q, want empty", got)
		}
	})
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dist", "index.html")

	if err := WriteFileAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestFormatPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	root := filepath.Join(string(filepath.Separator), "project")
	outside := filepath.Join(string(filepath.Separator), "elsewhere", "eti360.css")

	got := FormatPaths(root, []string{
		filepath.Join(root, "dist", "index.html"),
		outside,
	})
	want := "\n    - " + filepath.Join("dist", "index.html") + "\n    - " + outside + "\n"
	if got != want {
		t.Errorf("FormatPaths() = %q, want %q", got, want)
	}

	if got := FormatPaths("", []string{"ui_style.css"}); got != "\n    - ui_style.css\n" {
		t.Errorf("FormatPaths() without root = %q", got)
	}
}

func TestReadLimited(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		max       int64
		expectErr bool
	}{
		{"WithinLimit", "<html></html>", 64, false},
		{"ExactlyAtLimit", "12345", 5, false},
		{"OverLimit", "123456", 5, true},
		{"Empty", "", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadLimited(strings.NewReader(tt.input), tt.max)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error, got %q", data)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadLimited failed: %v", err)
			}
			if string(data) != tt.input {
				t.Errorf("ReadLimited() = %q, want %q", data, tt.input)
			}
		})
	}
}
