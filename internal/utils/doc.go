// Package utils provides shared helpers for pageseal.
//
// # Filesystem Utilities
//
//   - FindProjectRoot: walks up directories to find pageseal.toml
//   - WriteFileAtomic: writes a file so readers see all of it or none of it
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - CurrentIdentity: identifies who ran a command in the audit log
//
// # I/O Utilities
//
//   - ReadStdin, ReadLimited: read a sealed page piped on standard input
//
// # Terminal Utilities
//
//   - ReadPassphrase, ReadPassphraseFromTTY: no-echo passphrase prompts
//   - IsTerminal: checks whether stdin is a terminal
package utils
