// Package configs manages project and environment configuration for pageseal.
//
// # Project Configuration
//
// Build inputs and policy live in pageseal.toml at the project root:
//
//	template    = "index.html"
//	payload     = "apps.json"
//	css_sources = ["node_modules/@eti360/design-system/eti360.css", "ui_style.css"]
//	output      = "dist/index.html"
//	iterations  = 3000000
//	mode        = "optional"   # or "required"
//	audit_log   = ""           # e.g. ".pageseal/audit.jsonl"
//
//	[sync]
//	source   = "node_modules/@eti360/design-system/eti360.css"
//	vendored = "ui_style.css"
//	static   = "api/app/static/eti360.css"
//
// Keys that are absent keep their defaults, and a missing file means every
// default applies. Unknown keys are rejected. Relative paths are resolved against the directory that
// holds pageseal.toml (or the working directory when there is none).
//
// # Environment
//
// The passphrase is only ever read from the PASSWORD environment variable.
// It is never read from pageseal.toml or a command-line flag, so it does not
// end up in shell history or version control. PAGESEAL_CONFIG overrides the
// config file location.
//
// # Build Modes
//
// ModeOptional writes an unencrypted artifact with a warning when PASSWORD
// is blank. ModeRequired aborts the build instead.
package configs
