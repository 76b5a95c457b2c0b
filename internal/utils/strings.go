package utils

import (
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/pageseal/internal/ui"
)

// FormatPaths renders paths as an indented list. Paths inside root are
// shown relative to it.
func FormatPaths(root string, paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(displayPath(root, path)))
		b.WriteString("\n")
	}
	return b.String()
}

func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
