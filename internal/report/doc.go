// Package report renders verification results and data source listings in
// the formats the CLI offers: human-readable text, JSON, Markdown, and
// CSV/TSV (data sources only).
//
// Writers share two small interfaces so the CLI can pick a format once and
// hand it either kind of payload. All writers take an io.Writer destination;
// file handling (paths, permissions) is the caller's concern.
package report
