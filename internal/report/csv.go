package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gnvclient/gnvclient/internal/model"
)

// CSVWriter outputs the data source listing as delimiter-separated values
// for spreadsheet import. The comma delimiter produces CSV; a tab produces
// TSV.
type CSVWriter struct {
	baseWriter

	// separator is the field delimiter.
	separator rune
}

// NewCSVWriter creates a CSV writer that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output), separator: ','}
}

// NewTSVWriter creates a tab-separated writer that outputs to the given writer.
func NewTSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output), separator: '\t'}
}

// WriteDataSources outputs one row per data source with a header row.
// The byte count is not tracked by encoding/csv, so the returned count is
// always zero.
func (w *CSVWriter) WriteDataSources(sources []model.DataSource) (int, error) {
	cw := csv.NewWriter(w.output)
	cw.Comma = w.separator

	header := []string{
		"id", "uuid", "title", "title_short", "version",
		"home_url", "curation", "has_taxon_data", "record_count", "updated_at",
	}
	if err := cw.Write(header); err != nil {
		return 0, err
	}

	for _, s := range sources {
		row := []string{
			strconv.Itoa(s.ID),
			s.UUID,
			s.Title,
			s.TitleShort,
			s.Version,
			s.HomeURL,
			s.Curation,
			strconv.FormatBool(s.HasTaxonData),
			strconv.Itoa(s.RecordCount),
			s.UpdatedAt,
		}
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	return 0, cw.Error()
}
