package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/pageseal/internal/audit"
	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
	"github.com/PolarWolf314/pageseal/internal/seal"
	"github.com/PolarWolf314/pageseal/internal/utils"
)

// PromptFunc asks the user for a passphrase. attempt starts at 1.
type PromptFunc func(attempt int) ([]byte, error)

// UnsealOptions configures the unseal workflow.
type UnsealOptions struct {
	// Settings is the loaded project. If nil, settings are loaded from the
	// working directory and environment.
	Settings *configs.Settings

	// ArtifactData holds the sealed artifact when it was read from stdin.
	// If nil, the artifact is read from ArtifactPath.
	ArtifactData []byte

	// ArtifactPath is the sealed artifact to open.
	ArtifactPath string

	// OutputPath receives the decrypted document. If empty, the document is
	// only returned in the result.
	OutputPath string

	// Prompt is asked for a passphrase when PASSWORD is blank, and again
	// after every failed attempt. If nil, only PASSWORD is tried.
	Prompt PromptFunc

	// MaxAttempts bounds how often Prompt is asked. Zero means unlimited.
	MaxAttempts int
}

// UnsealResult contains the outcome of an unseal operation.
type UnsealResult struct {
	// Document is the decrypted HTML.
	Document []byte

	// OutputPath is where the document was written, if anywhere.
	OutputPath string

	// Iterations is the work factor recorded in the artifact.
	Iterations int

	// Attempts is how many passphrases were tried.
	Attempts int
}

// Unseal decrypts a sealed artifact the same way the page does in a browser.
//
// The passphrase comes from PASSWORD first. Each failure re-prompts through
// opts.Prompt, mirroring the page returning to its password form.
//
// Returns ErrInvalidArtifact if the input carries no readable envelope.
// Returns ErrDecryptFailed once no further passphrase is available.
func Unseal(ctx context.Context, opts UnsealOptions) (*UnsealResult, error) {
	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = configs.LoadSettings("")
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
	}

	artifact := opts.ArtifactData
	if artifact == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		artifact, err = ReadArtifact(opts.ArtifactPath)
		if err != nil {
			return nil, err
		}
	}

	envelope, err := seal.Parse(artifact)
	if err != nil {
		return nil, err
	}

	unlocker := seal.NewUnlocker(envelope)
	result := &UnsealResult{Iterations: envelope.Iterations}

	document, err := tryPassphrases(ctx, unlocker, settings.Env.Passphrase(), opts, result)
	if err != nil {
		return nil, err
	}
	result.Document = document

	if opts.OutputPath != "" {
		// #nosec G306 -- the caller chose to write the plaintext out.
		if err := utils.WriteFileAtomic(opts.OutputPath, document, 0600); err != nil {
			return nil, fmt.Errorf("writing document: %w", err)
		}
		result.OutputPath = opts.OutputPath
	}

	entry := audit.NewEntry("unseal")
	entry.Inputs = []string{opts.ArtifactPath}
	entry.Output = result.OutputPath
	entry.Iterations = result.Iterations
	audit.Log(settings.Abs(settings.Project.AuditLog), entry)

	return result, nil
}

func tryPassphrases(ctx context.Context, unlocker *seal.Unlocker, fromEnv []byte, opts UnsealOptions, result *UnsealResult) ([]byte, error) {
	if fromEnv != nil {
		result.Attempts++
		document, err := unlocker.Submit(fromEnv)
		clear(fromEnv)
		if err == nil {
			return document, nil
		}
		if !errors.Is(err, perrors.ErrDecryptFailed) {
			return nil, err
		}
	}

	if opts.Prompt == nil {
		if result.Attempts == 0 {
			return nil, perrors.ErrMissingPassphrase
		}
		return nil, perrors.ErrDecryptFailed
	}

	for prompts := 1; opts.MaxAttempts == 0 || prompts <= opts.MaxAttempts; prompts++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		passphrase, err := opts.Prompt(prompts)
		if err != nil {
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}

		result.Attempts++
		document, err := unlocker.Submit(passphrase)
		clear(passphrase)
		if err == nil {
			return document, nil
		}
		if !errors.Is(err, perrors.ErrDecryptFailed) {
			return nil, err
		}
	}

	return nil, perrors.ErrDecryptFailed
}

// MaxArtifactSize bounds a sealed page read from stdin.
const MaxArtifactSize = 256 << 20

// ReadArtifact reads a sealed artifact from path, or from stdin when path
// is "-".
func ReadArtifact(path string) ([]byte, error) {
	if path == "-" {
		data, err := utils.ReadStdin(MaxArtifactSize)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", perrors.ErrMissingInput, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user supplied artifact path.
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrMissingInput, path, err)
	}
	return data, nil
}
