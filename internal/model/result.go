package model

// NameMatch holds the verification outcome for a single input name.
// A name the engine did not recognize has an empty Candidates slice and
// MatchType NoMatch; it is never omitted from the result.
type NameMatch struct {
	// Input is the queried name string exactly as submitted.
	Input string `json:"input"`

	// MatchType is the engine's overall match classification for the name.
	MatchType MatchType `json:"matchType"`

	// Curation is the best curation level among the matched sources.
	Curation string `json:"curation,omitempty"`

	// Candidates are the proposed matches in the engine's best-first order.
	// Empty when the name was not found. When the request asked for the best
	// match only, at most one candidate is present.
	Candidates []MatchCandidate `json:"candidates"`
}

// Matched reports whether at least one candidate was found for the name.
func (n NameMatch) Matched() bool {
	return len(n.Candidates) > 0
}

// KingdomCount is the per-kingdom breakdown inside Statistics.
type KingdomCount struct {
	Kingdom    string  `json:"kingdom"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage,omitempty"`
}

// Statistics aggregates counts over one verification call. The matched and
// per-source counts are always derived from the normalized candidate lists;
// the taxon fields are passed through from the engine when it supplies them.
type Statistics struct {
	// NamesTotal is the number of input names, matched or not.
	NamesTotal int `json:"namesTotal"`

	// NamesMatched is the number of input names with at least one candidate.
	NamesMatched int `json:"namesMatched"`

	// NamesUnmatched is NamesTotal - NamesMatched.
	NamesUnmatched int `json:"namesUnmatched"`

	// PerSource counts candidates by data-source ID across all names.
	PerSource map[int]int `json:"perSource,omitempty"`

	// MainTaxon is the engine's dominant clade among the matched names.
	MainTaxon string `json:"mainTaxon,omitempty"`

	// MainTaxonPercentage is the share of matched names under MainTaxon.
	MainTaxonPercentage float64 `json:"mainTaxonPercentage,omitempty"`

	// Kingdom is the dominant kingdom among the matched names.
	Kingdom string `json:"kingdom,omitempty"`

	// KingdomPercentage is the share of matched names in Kingdom.
	KingdomPercentage float64 `json:"kingdomPercentage,omitempty"`

	// Kingdoms is the per-kingdom breakdown, when the engine supplies one.
	Kingdoms []KingdomCount `json:"kingdoms,omitempty"`
}

// VerificationResult is the stable, typed outcome of one verification call.
//
// Invariant: Names has exactly the same length and order as the request's
// name list, regardless of the order (or absence) of entries in the engine's
// raw output. The result is constructed once by the normalizer and owned by
// the caller thereafter.
type VerificationResult struct {
	// Names holds one entry per input name, in input order.
	Names []NameMatch `json:"names"`

	// Stats is present only when the request asked for statistics.
	Stats *Statistics `json:"stats,omitempty"`
}

// MatchedCount returns the number of input names with at least one candidate.
func (r *VerificationResult) MatchedCount() int {
	count := 0
	for _, n := range r.Names {
		if n.Matched() {
			count++
		}
	}
	return count
}
