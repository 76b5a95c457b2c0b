package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/PolarWolf314/pageseal/internal/assemble"
	"github.com/PolarWolf314/pageseal/internal/audit"
	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/seal"
	"github.com/PolarWolf314/pageseal/internal/utils"
)

// BuildOptions configures the build workflow.
type BuildOptions struct {
	// Settings is the loaded project. If nil, settings are loaded from the
	// working directory and environment.
	Settings *configs.Settings

	// DryRun assembles and seals without writing the artifact.
	DryRun bool
}

// BuildResult contains the outcome of a build.
type BuildResult struct {
	// Output is the absolute path of the artifact.
	Output string

	// Stylesheet is the CSS source that was inlined.
	Stylesheet string

	// Encrypted reports whether the artifact was sealed.
	Encrypted bool

	// Insecure reports that no passphrase was set and the artifact is
	// plaintext. Only possible in optional mode.
	Insecure bool

	// Iterations is the key derivation work factor, zero when unencrypted.
	Iterations int

	// Bytes is the size of the artifact.
	Bytes int

	// ID identifies the build in the audit log.
	ID string

	// DryRun indicates nothing was written.
	DryRun bool
}

type buildInputs struct {
	template   string
	stylesheet string
	payload    string

	stylesheetPath string
}

// Build assembles the template, stylesheet and payload into one document and
// seals it with the PASSWORD passphrase.
//
// Returns ErrMissingInput if any input cannot be read.
// Returns ErrMissingPassphrase if PASSWORD is blank and the project mode is
// required. In optional mode a blank PASSWORD produces a plaintext artifact
// and sets Insecure on the result.
//
// The artifact is written atomically, so a failed build leaves any previous
// artifact untouched.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = configs.LoadSettings("")
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
	}
	project := settings.Project

	inputs, err := loadInputs(ctx, settings)
	if err != nil {
		return nil, err
	}

	document := assemble.Assemble(inputs.template, inputs.stylesheet, inputs.payload)

	result := &BuildResult{
		Output:     settings.Abs(project.Output),
		Stylesheet: inputs.stylesheetPath,
		DryRun:     opts.DryRun,
	}

	artifact := []byte(document)
	passphrase := settings.Env.Passphrase()
	if passphrase == nil {
		if project.Mode == configs.ModeRequired {
			return nil, perrors.ErrMissingPassphrase
		}
		result.Insecure = true
	} else {
		artifact, err = seal.Seal(artifact, passphrase, project.Iterations)
		clear(passphrase)
		if err != nil {
			return nil, fmt.Errorf("sealing document: %w", err)
		}
		result.Encrypted = true
		result.Iterations = project.Iterations
	}
	result.Bytes = len(artifact)

	if opts.DryRun {
		return result, nil
	}

	if err := utils.WriteFileAtomic(result.Output, artifact, 0644); err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}

	entry := audit.NewEntry("build")
	entry.Inputs = []string{settings.Abs(project.Template), inputs.stylesheetPath, settings.Abs(project.Payload)}
	entry.Output = result.Output
	entry.Encrypted = result.Encrypted
	entry.Iterations = result.Iterations
	entry.Mode = string(project.Mode)
	entry.Bytes = result.Bytes
	audit.Log(settings.Abs(project.AuditLog), entry)
	result.ID = entry.ID

	return result, nil
}

// loadInputs reads the three build inputs concurrently. The assembler only
// runs once all of them are in memory.
func loadInputs(ctx context.Context, settings *configs.Settings) (*buildInputs, error) {
	project := settings.Project
	inputs := &buildInputs{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := readInput(ctx, settings.Abs(project.Template))
		inputs.template = string(data)
		return err
	})

	g.Go(func() error {
		path, err := ResolveStylesheet(settings.Root, project.CSSSources)
		if err != nil {
			return err
		}
		data, err := readInput(ctx, path)
		inputs.stylesheet = string(data)
		inputs.stylesheetPath = path
		return err
	})

	g.Go(func() error {
		data, err := readInput(ctx, settings.Abs(project.Payload))
		inputs.payload = string(data)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

func readInput(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the project config.
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrMissingInput, path, err)
	}
	return data, nil
}

// ResolveStylesheet returns the first candidate that exists as a regular
// file. Candidates are relative to root unless absolute and may be doublestar
// glob patterns, in which case the first match in lexical order is used.
//
// Returns ErrNoStylesheet, wrapped in ErrMissingInput, when nothing matches.
func ResolveStylesheet(root string, candidates []string) (string, error) {
	for _, candidate := range candidates {
		pattern := candidate
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return "", fmt.Errorf("%w: bad stylesheet pattern %q: %v", perrors.ErrInvalidConfig, candidate, err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("%w: %w: tried %v", perrors.ErrMissingInput, perrors.ErrNoStylesheet, candidates)
}
