// Package ui provides semantic text formatting for pageseal's CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or the terminal has no color support, text decorations (backticks,
// quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("pageseal build")     // Commands and code
//	ui.Path.Sprint("dist/index.html")    // File paths
//	ui.Success.Sprint("✓")               // Success indicators
//	ui.Error.Sprint("✗")                 // Error indicators
//	ui.Warning.Sprint("[dry-run]")       // Warnings
//	ui.Info.Sprint("→")                  // Informational hints
//	ui.Highlight.Sprint("3000000")       // User values
//	ui.Muted.Sprint("unencrypted")       // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration
package ui
