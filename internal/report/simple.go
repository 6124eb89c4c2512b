package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gnvclient/gnvclient/internal/model"
)

// SimpleWriter outputs human-readable text for terminal display.
//
// Plain text with ASCII formatting rather than ANSI colors: it works in all
// terminals and pipes cleanly into files and other tools.
type SimpleWriter struct {
	baseWriter

	// verbose adds per-candidate detail: record IDs, scores, edit
	// distances, and the full classification path.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the verification result in human-readable format.
func (w *SimpleWriter) Write(result *model.VerificationResult) (int, error) {
	var sb strings.Builder

	for i, name := range result.Names {
		if i > 0 {
			sb.WriteString("\n")
		}
		w.writeName(&sb, name)
	}

	if result.Stats != nil {
		sb.WriteString("\n")
		w.writeStats(&sb, result.Stats)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeName writes the block for one input name.
func (w *SimpleWriter) writeName(sb *strings.Builder, name model.NameMatch) {
	sb.WriteString(fmt.Sprintf("%s\n", name.Input))
	sb.WriteString(fmt.Sprintf("  Match Type: %s\n", name.MatchType))

	if !name.Matched() {
		sb.WriteString("  No matches found\n")
		return
	}

	for i, c := range name.Candidates {
		sb.WriteString(fmt.Sprintf("  Result %d:\n", i+1))
		w.writeCandidate(sb, c)
	}
}

// writeCandidate writes one match candidate, indented under its name.
func (w *SimpleWriter) writeCandidate(sb *strings.Builder, c model.MatchCandidate) {
	writeField := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("    %-18s %s\n", label+":", value))
		}
	}

	writeField("Matched Name", c.MatchedName)
	if c.DataSourceTitleShort != "" {
		writeField("Data Source", fmt.Sprintf("%s (id %d)", c.DataSourceTitleShort, c.DataSourceID))
	} else {
		writeField("Data Source", fmt.Sprintf("id %d", c.DataSourceID))
	}
	writeField("Status", c.TaxonomicStatus)
	if c.IsSynonym {
		writeField("Current Name", c.CurrentName)
	}
	writeField("Source Link", c.Outlink)

	if w.verbose {
		writeField("Record ID", c.RecordID)
		writeField("Match Type", c.MatchType.String())
		writeField("Curation", c.Curation)
		writeField("Score", strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", c.SortScore), "0"), "."))
		if c.EditDistance > 0 {
			writeField("Edit Distance", fmt.Sprintf("%d", c.EditDistance))
		}
		if len(c.Classification) > 0 {
			sb.WriteString("    Classification:\n")
			for _, rank := range c.Classification {
				if rank.Rank != "" {
					sb.WriteString(fmt.Sprintf("      %s: %s\n", rank.Rank, rank.Name))
				} else {
					sb.WriteString(fmt.Sprintf("      %s\n", rank.Name))
				}
			}
		}
	}
}

// writeStats writes the aggregate statistics section.
func (w *SimpleWriter) writeStats(sb *strings.Builder, stats *model.Statistics) {
	sb.WriteString(strings.Repeat("-", 40))
	sb.WriteString("\nStatistics\n")
	sb.WriteString(fmt.Sprintf("  Names:     %d\n", stats.NamesTotal))
	sb.WriteString(fmt.Sprintf("  Matched:   %d\n", stats.NamesMatched))
	sb.WriteString(fmt.Sprintf("  Unmatched: %d\n", stats.NamesUnmatched))

	if stats.MainTaxon != "" {
		sb.WriteString(fmt.Sprintf("  Main Taxon: %s (%.1f%%)\n", stats.MainTaxon, stats.MainTaxonPercentage*100))
	}
	if stats.Kingdom != "" {
		sb.WriteString(fmt.Sprintf("  Kingdom:    %s (%.1f%%)\n", stats.Kingdom, stats.KingdomPercentage*100))
	}

	if len(stats.PerSource) > 0 {
		sb.WriteString("  Matches per source:\n")
		ids := make([]int, 0, len(stats.PerSource))
		for id := range stats.PerSource {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			sb.WriteString(fmt.Sprintf("    source %d: %d\n", id, stats.PerSource[id]))
		}
	}
}

// WriteDataSources outputs the data source listing as an aligned text table.
func (w *SimpleWriter) WriteDataSources(sources []model.DataSource) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-50s %-12s %-10s %s\n", "ID", "Title", "Records", "Curation", "Updated"))
	sb.WriteString(strings.Repeat("-", 90))
	sb.WriteString("\n")

	for _, s := range sources {
		title := s.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-5d %-50s %-12d %-10s %s\n",
			s.ID, title, s.RecordCount, s.Curation, s.UpdatedAt))
	}
	sb.WriteString(fmt.Sprintf("\n%d data sources\n", len(sources)))

	return w.output.Write([]byte(sb.String()))
}
