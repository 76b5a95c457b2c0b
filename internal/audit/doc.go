// Package audit records what pageseal built, unsealed or synced.
//
// # Log Format
//
// The audit log is JSON Lines (one JSON object per line) at the path set by
// audit_log in pageseal.toml. An empty audit_log disables it.
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name (build, unseal, sync-css)
//   - Operation ID (a UUID, also reported by the CLI)
//   - The local user and host
//   - Operation-specific details (output path, encryption, work factor)
//
// The passphrase and artifact contents are never recorded.
//
// # Usage
//
//	entry := audit.NewEntry("build")
//	entry.Output = "dist/index.html"
//	entry.Encrypted = true
//	audit.Log(logPath, entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
package audit
