// Package cli renders the results of a run.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplayStageSummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatReport], [FormatStageSummary].
//
// The report goes to stdout and is plain text. Everything else (summary,
// memory statistics, errors, spinner) targets stderr and uses the styles of
// the active [ui.Theme].
package cli
