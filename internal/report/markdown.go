package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/gnvclient/gnvclient/internal/model"
)

// MarkdownWriter outputs results in GitHub Flavored Markdown, for
// documentation and sharing. The nao1215/markdown library gives type-safe
// generation of tables and lists.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the verification result in Markdown format.
func (w *MarkdownWriter) Write(result *model.VerificationResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Name Verification Report")
	md.PlainText("")

	w.writeSummary(md, result)

	for _, name := range result.Names {
		w.writeName(md, name)
	}

	if result.Stats != nil {
		w.writeStats(md, result.Stats)
	}

	return len(md.String()), md.Build()
}

// writeSummary writes the per-name overview table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.VerificationResult) {
	rows := make([][]string, 0, len(result.Names))
	for _, name := range result.Names {
		best := "-"
		if name.Matched() {
			best = name.Candidates[0].MatchedName
		}
		rows = append(rows, []string{
			"`" + name.Input + "`",
			name.MatchType.String(),
			strconv.Itoa(len(name.Candidates)),
			best,
		})
	}

	md.H2("Summary")
	md.Table(markdown.TableSet{
		Header: []string{"Input Name", "Match Type", "Candidates", "Best Match"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeName writes the candidate table for one input name.
func (w *MarkdownWriter) writeName(md *markdown.Markdown, name model.NameMatch) {
	md.H2(name.Input)

	if !name.Matched() {
		md.PlainText("No matches found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(name.Candidates))
	for _, c := range name.Candidates {
		source := c.DataSourceTitleShort
		if source == "" {
			source = strconv.Itoa(c.DataSourceID)
		}
		matched := c.MatchedName
		if c.Outlink != "" {
			matched = fmt.Sprintf("[%s](%s)", c.MatchedName, c.Outlink)
		}
		rows = append(rows, []string{
			matched,
			source,
			c.TaxonomicStatus,
			c.MatchType.String(),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Matched Name", "Source", "Status", "Match Type"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeStats writes the aggregate statistics section.
func (w *MarkdownWriter) writeStats(md *markdown.Markdown, stats *model.Statistics) {
	md.H2("Statistics")

	rows := [][]string{
		{"Names", strconv.Itoa(stats.NamesTotal)},
		{"Matched", strconv.Itoa(stats.NamesMatched)},
		{"Unmatched", strconv.Itoa(stats.NamesUnmatched)},
	}
	if stats.MainTaxon != "" {
		rows = append(rows, []string{"Main Taxon", fmt.Sprintf("%s (%.1f%%)", stats.MainTaxon, stats.MainTaxonPercentage*100)})
	}
	if stats.Kingdom != "" {
		rows = append(rows, []string{"Kingdom", fmt.Sprintf("%s (%.1f%%)", stats.Kingdom, stats.KingdomPercentage*100)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// WriteDataSources outputs the data source listing as a Markdown table.
func (w *MarkdownWriter) WriteDataSources(sources []model.DataSource) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("GNverifier Data Sources")
	md.PlainText("")

	rows := make([][]string, 0, len(sources))
	for _, s := range sources {
		title := s.Title
		if s.HomeURL != "" {
			title = fmt.Sprintf("[%s](%s)", s.Title, s.HomeURL)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			title,
			strconv.Itoa(s.RecordCount),
			s.Curation,
			s.UpdatedAt,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Title", "Records", "Curation", "Updated"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("%d data sources", len(sources))

	return len(md.String()), md.Build()
}
