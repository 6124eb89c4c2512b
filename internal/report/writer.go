package report

import (
	"io"
	"sort"
	"strings"

	"github.com/gnvclient/gnvclient/internal/model"
)

// VerificationWriter renders a verification result.
type VerificationWriter interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.VerificationResult) (int, error)
}

// DataSourceWriter renders a data source listing.
type DataSourceWriter interface {
	// WriteDataSources outputs the listing to the configured destination.
	WriteDataSources(sources []model.DataSource) (int, error)
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Data source sort keys accepted by SortDataSources.
const (
	SortByID          = "id"
	SortByTitle       = "title"
	SortByRecordCount = "record-count"
	SortByUpdatedAt   = "updated-at"
)

// SortDataSources returns a sorted copy of the listing. Unknown keys fall
// back to ID order. The input slice is not modified, since catalog listings
// are shared between callers.
func SortDataSources(sources []model.DataSource, key string, descending bool) []model.DataSource {
	sorted := make([]model.DataSource, len(sources))
	copy(sorted, sources)

	less := func(a, b model.DataSource) bool { return a.ID < b.ID }
	switch key {
	case SortByTitle:
		less = func(a, b model.DataSource) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByRecordCount:
		less = func(a, b model.DataSource) bool { return a.RecordCount < b.RecordCount }
	case SortByUpdatedAt:
		less = func(a, b model.DataSource) bool { return a.UpdatedAt < b.UpdatedAt }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
