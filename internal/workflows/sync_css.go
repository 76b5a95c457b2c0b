package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pageseal/internal/audit"
	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/utils"
)

// SyncCSSOptions configures the sync-css workflow.
type SyncCSSOptions struct {
	// Settings is the loaded project. If nil, settings are loaded from the
	// working directory and environment.
	Settings *configs.Settings
}

// SyncCSSResult contains the outcome of a sync-css operation.
type SyncCSSResult struct {
	// Source is the stylesheet that was copied.
	Source string

	// Written lists the files that were created or replaced.
	Written []string

	// Bytes is the size of the copied stylesheet.
	Bytes int
}

// SyncCSS copies the design system stylesheet to the vendored fallback path
// used by builds and to a static copy that carries a provenance header.
//
// Returns ErrMissingInput if the source stylesheet cannot be read.
func SyncCSS(ctx context.Context, opts SyncCSSOptions) (*SyncCSSResult, error) {
	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = configs.LoadSettings("")
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
	}
	sync := settings.Project.Sync

	if sync.Source == "" {
		return nil, fmt.Errorf("%w: sync.source must not be empty", perrors.ErrInvalidConfig)
	}

	source := settings.Abs(sync.Source)
	css, err := readInput(ctx, source)
	if err != nil {
		return nil, err
	}

	result := &SyncCSSResult{
		Source: source,
		Bytes:  len(css),
	}

	if sync.Vendored != "" {
		vendored := settings.Abs(sync.Vendored)
		if err := utils.WriteFileAtomic(vendored, css, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", vendored, err)
		}
		result.Written = append(result.Written, vendored)
	}

	if sync.Static != "" {
		static := settings.Abs(sync.Static)
		data := append([]byte(ProvenanceHeader(sync.Source)), css...)
		if err := utils.WriteFileAtomic(static, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", static, err)
		}
		result.Written = append(result.Written, static)
	}

	entry := audit.NewEntry("sync-css")
	entry.Inputs = []string{source}
	entry.Bytes = result.Bytes
	audit.Log(settings.Abs(settings.Project.AuditLog), entry)

	return result, nil
}

// ProvenanceHeader is the CSS comment prepended to the static copy.
func ProvenanceHeader(source string) string {
	return "/*\n  Vendored from " + source + "\n  Run: pageseal sync-css\n*/\n\n"
}
