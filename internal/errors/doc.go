// Package errors provides typed error values for pageseal.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: a build input could not be loaded (ErrMissingInput, ErrNoStylesheet)
//   - Passphrase errors: the configured passphrase is unusable (ErrMissingPassphrase, ErrEmptyPassphrase)
//   - Crypto errors: sealing or unsealing failed (ErrDecryptFailed, ErrInvalidArtifact)
//   - Config errors: pageseal.toml or the environment is malformed (ErrInvalidConfig)
//
// # Usage
//
// Return errors from internal packages:
//
//	if strings.TrimSpace(string(passphrase)) == "" {
//	    return nil, errors.ErrEmptyPassphrase
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Build(ctx, opts)
//	if errors.Is(err, perrors.ErrMissingPassphrase) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading template %s: %w", path, errors.ErrMissingInput)
package errors
