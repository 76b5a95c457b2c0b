// Package workflows provides high-level orchestration for pageseal commands.
//
// Workflows coordinate the configs, assemble, seal and audit packages to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading configuration (pageseal.toml and the environment)
//   - Reading inputs and writing outputs
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Build: Assembles the page and seals it when PASSWORD is set
//   - SyncCSS: Copies the design system stylesheet into the project
//   - Unseal: Decrypts a sealed artifact back to its document
//   - Init: Writes a default pageseal.toml
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Build(ctx, opts)
//	if errors.Is(err, perrors.ErrMissingPassphrase) {
//	    // Explain how to set PASSWORD
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Build stops reading inputs once the context is cancelled.
package workflows
