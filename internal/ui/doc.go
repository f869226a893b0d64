// Package ui provides semantic text formatting and input prompts for
// CLI output.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("notevault auth login")   // Commands and code
//	ui.Path.Sprint("notes_alice.encrypted")  // File paths
//	ui.Flag.Sprint("--folder")               // CLI flags
//	ui.Info.Sprint("→")                       // Informational hints
//	ui.Highlight.Sprint("alice")              // User values
//	ui.Muted.Sprint("optional")               // De-emphasized text
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
//   - Others: no decoration (self-evident from context)
//
// # Prompts
//
// ReadPassphrase reads masked input from a terminal, falling back to
// the NOTEVAULT_PASSPHRASE environment variable when stdin is not a
// TTY so commands stay scriptable.
package ui
