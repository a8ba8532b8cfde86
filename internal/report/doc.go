// Package report renders assessments and report acknowledgments.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// Design decision: We separate report writing from the model package so the
// scorer returns plain structured data and every color, label and
// percentage decision lives here. New output formats can be added without
// touching the scoring core.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
