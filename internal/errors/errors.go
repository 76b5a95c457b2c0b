package errors

import "errors"

// Input errors indicate a build input could not be loaded.
var (
	// ErrMissingInput indicates a required source file cannot be read.
	ErrMissingInput = errors.New("required input could not be read")

	// ErrNoStylesheet indicates none of the configured stylesheet candidates exist.
	ErrNoStylesheet = errors.New("no stylesheet found among configured sources")
)

// Passphrase errors indicate the passphrase is absent or unusable.
var (
	// ErrMissingPassphrase indicates no passphrase was configured for a build
	// that requires one.
	ErrMissingPassphrase = errors.New("PASSWORD is not set")

	// ErrEmptyPassphrase indicates the sealer was handed an empty or blank passphrase.
	ErrEmptyPassphrase = errors.New("passphrase cannot be empty")
)

// Cryptographic errors indicate failures while sealing or unsealing an artifact.
var (
	// ErrInvalidIterations indicates a non-positive key derivation work factor.
	ErrInvalidIterations = errors.New("iteration count must be at least 1")

	// ErrInvalidArtifact indicates the document is not a sealed artifact this
	// version understands.
	ErrInvalidArtifact = errors.New("not a valid sealed artifact")

	// ErrDecryptFailed indicates a wrong passphrase or a corrupted artifact.
	// The two causes are deliberately not distinguished.
	ErrDecryptFailed = errors.New("incorrect passphrase or corrupted artifact")

	// ErrSuperseded indicates an unlock attempt finished after a newer attempt
	// was submitted, so its result was discarded.
	ErrSuperseded = errors.New("unlock attempt superseded")
)

// Configuration errors indicate malformed project or environment settings.
var (
	// ErrInvalidConfig indicates pageseal.toml or the environment holds an invalid value.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrAlreadyInitialized indicates pageseal.toml already exists.
	ErrAlreadyInitialized = errors.New("project already has a pageseal.toml")
)
