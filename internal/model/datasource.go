package model

import "strings"

// DataSource describes one nomenclatural database available to the verifier
// engine. The ID is assigned by the engine and is stable across calls, so it
// can be used in verification requests to restrict matching to specific
// databases.
//
// A DataSource is immutable once fetched; the catalog replaces whole listings
// rather than mutating entries in place.
type DataSource struct {
	// ID is the engine-assigned, positive integer identifier.
	ID int `json:"id"`

	// UUID is the engine's UUID for the data source. May be empty.
	UUID string `json:"uuid,omitempty"`

	// Title is the full human-readable name of the data source.
	Title string `json:"title"`

	// TitleShort is the abbreviated name (e.g. "Catalogue of Life" -> "CoL").
	// May be empty when the engine does not supply one.
	TitleShort string `json:"titleShort,omitempty"`

	// Version is the data source release version, if reported.
	Version string `json:"version,omitempty"`

	// Description is a free-text description of the data source.
	Description string `json:"description,omitempty"`

	// HomeURL is the home page of the data source project.
	HomeURL string `json:"homeURL,omitempty"`

	// IsOutlinkReady indicates the engine can produce record-level outlinks
	// into this data source.
	IsOutlinkReady bool `json:"isOutlinkReady,omitempty"`

	// Curation reports the curation level (e.g. "Curated", "AutoCurated").
	Curation string `json:"curation,omitempty"`

	// HasTaxonData indicates the data source carries classification data.
	HasTaxonData bool `json:"hasTaxonData,omitempty"`

	// RecordCount is the number of name records in the data source.
	RecordCount int `json:"recordCount,omitempty"`

	// UpdatedAt is the engine-reported last update timestamp, verbatim.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// MatchesTitle reports whether the given name refers to this data source.
// It accepts the full title, the short title, and their lowercase
// dash-separated forms (e.g. "catalogue-of-life"), mirroring how users name
// sources on the command line.
func (d DataSource) MatchesTitle(name string) bool {
	if name == "" {
		return false
	}
	for _, candidate := range []string{d.Title, d.TitleShort, argName(d.Title), argName(d.TitleShort)} {
		if candidate != "" && strings.EqualFold(name, candidate) {
			return true
		}
	}
	return false
}

// argName converts a title to its command-line friendly form:
// spaces and underscores become dashes and the result is lowercased.
func argName(title string) string {
	s := strings.ReplaceAll(title, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ToLower(s)
}
