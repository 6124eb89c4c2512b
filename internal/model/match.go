package model

// MatchType classifies how an input name matched a record, using the
// engine's own vocabulary. Values are passed through verbatim so that new
// engine match types do not break decoding; the constants below cover the
// types the engine currently reports.
type MatchType string

const (
	// MatchTypeNoMatch means the engine found no record for the name.
	MatchTypeNoMatch MatchType = "NoMatch"

	// MatchTypeExact means the full name string matched a record exactly.
	MatchTypeExact MatchType = "Exact"

	// MatchTypeFuzzy means the name matched within a small edit distance.
	MatchTypeFuzzy MatchType = "Fuzzy"

	// MatchTypePartialExact means a truncated form of the name matched exactly
	// (e.g. a trinomial matched at binomial rank).
	MatchTypePartialExact MatchType = "PartialExact"

	// MatchTypePartialFuzzy means a truncated form matched fuzzily.
	MatchTypePartialFuzzy MatchType = "PartialFuzzy"

	// MatchTypeVirus means the name matched the engine's virus name handling.
	MatchTypeVirus MatchType = "Virus"
)

// IsMatch reports whether the match type represents a found record.
func (m MatchType) IsMatch() bool {
	return m != "" && m != MatchTypeNoMatch
}

// String returns the match type as reported by the engine, or "NoMatch"
// for the zero value.
func (m MatchType) String() string {
	if m == "" {
		return string(MatchTypeNoMatch)
	}
	return string(m)
}

// ClassificationRank is one level of a taxonomic classification path.
type ClassificationRank struct {
	// Rank is the taxonomic rank name (e.g. "kingdom", "family"). May be
	// empty when the data source does not annotate ranks.
	Rank string `json:"rank,omitempty"`

	// Name is the taxon name at this rank.
	Name string `json:"name"`

	// ID is the record identifier of the taxon in the source database.
	ID string `json:"id,omitempty"`
}

// MatchCandidate is one proposed match for an input name, produced by the
// result normalizer from the engine's raw output. Candidates are read-only
// and keep the engine's own ranking order; the client never re-sorts them.
type MatchCandidate struct {
	// DataSourceID identifies which data source the record came from.
	DataSourceID int `json:"dataSourceId"`

	// DataSourceTitleShort is the abbreviated title of that data source.
	DataSourceTitleShort string `json:"dataSourceTitleShort,omitempty"`

	// RecordID is the record identifier inside the data source.
	RecordID string `json:"recordId,omitempty"`

	// MatchedName is the full name string of the matched record.
	MatchedName string `json:"matchedName"`

	// MatchedCanonicalSimple is the simple canonical form of the matched name.
	MatchedCanonicalSimple string `json:"matchedCanonicalSimple,omitempty"`

	// MatchedCanonicalFull is the full canonical form of the matched name.
	MatchedCanonicalFull string `json:"matchedCanonicalFull,omitempty"`

	// CurrentName is the currently accepted name for the record, which
	// differs from MatchedName when the match is a synonym.
	CurrentName string `json:"currentName,omitempty"`

	// CurrentCanonicalFull is the full canonical form of the accepted name.
	CurrentCanonicalFull string `json:"currentCanonicalFull,omitempty"`

	// TaxonomicStatus reports the record status ("Accepted", "Synonym", ...).
	TaxonomicStatus string `json:"taxonomicStatus,omitempty"`

	// IsSynonym indicates the matched record is a synonym of CurrentName.
	IsSynonym bool `json:"isSynonym,omitempty"`

	// Curation is the curation level of the source data.
	Curation string `json:"curation,omitempty"`

	// Outlink is a URL pointing at the record in the source database.
	Outlink string `json:"outlink,omitempty"`

	// EntryDate is the engine-reported record entry date, verbatim.
	EntryDate string `json:"entryDate,omitempty"`

	// SortScore is the engine's ranking score for this candidate. Candidates
	// arrive ordered best-first; the score is informational only.
	SortScore float64 `json:"sortScore,omitempty"`

	// EditDistance is the Levenshtein distance between the input and the
	// matched name. Zero for exact matches.
	EditDistance int `json:"editDistance,omitempty"`

	// StemEditDistance is the edit distance between stemmed forms.
	StemEditDistance int `json:"stemEditDistance,omitempty"`

	// MatchType classifies how this particular record matched.
	MatchType MatchType `json:"matchType,omitempty"`

	// Classification is the taxonomic path of the record, outermost rank
	// first. Nil when the data source provides no classification.
	Classification []ClassificationRank `json:"classification,omitempty"`
}
