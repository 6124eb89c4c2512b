package engine

// Raw wire types for the engine's JSON responses.
//
// These structs mirror the engine's output schema. Decoding is deliberately
// tolerant: unknown fields are ignored for forward compatibility, and
// optional fields keep their zero value when absent. The only hard
// requirement, enforced after decoding, is that every name entry echoes the
// queried name string, because that echo is what result correlation relies
// on.

// RawOutput is the decoded body of a POST /verifications response. When a
// request was split into batches, the client reassembles one RawOutput with
// the Names of all batches concatenated in submission order.
type RawOutput struct {
	Metadata RawMetadata `json:"metadata"`
	Names    []RawName   `json:"names"`
}

// RawMetadata is the engine's per-call metadata block.
type RawMetadata struct {
	NamesNumber         int          `json:"namesNumber"`
	WithStats           bool         `json:"withStats"`
	DataSources         []int        `json:"dataSources"`
	MainTaxonThreshold  float64      `json:"mainTaxonThreshold"`
	StatsNamesNum       int          `json:"statsNamesNum"`
	MainTaxon           string       `json:"mainTaxon"`
	MainTaxonPercentage float64      `json:"mainTaxonPercentage"`
	Kingdom             string       `json:"kingdom"`
	KingdomPercentage   float64      `json:"kingdomPercentage"`
	Kingdoms            []RawKingdom `json:"kingdoms"`
}

// RawKingdom is one entry of the metadata kingdom breakdown.
type RawKingdom struct {
	KingdomName string  `json:"kingdomName"`
	NamesNumber int     `json:"namesNumber"`
	Percentage  float64 `json:"percentage"`
}

// RawName is the engine's match group for one queried name. Name echoes the
// queried string and is required; an entry without it cannot be correlated
// and fails the whole decode with ErrEngineProtocol.
type RawName struct {
	Name      string      `json:"name"`
	MatchType string      `json:"matchType"`
	Curation  string      `json:"curation"`
	Error     string      `json:"error"`
	Results   []RawResult `json:"results"`

	// BestResult is populated instead of Results when the engine was asked
	// for the best match only.
	BestResult *RawResult `json:"bestResult"`
}

// Matches returns the match entries for the name regardless of whether the
// engine reported them under results or bestResult.
func (n RawName) Matches() []RawResult {
	if len(n.Results) > 0 {
		return n.Results
	}
	if n.BestResult != nil {
		return []RawResult{*n.BestResult}
	}
	return nil
}

// RawResult is one matched record for a queried name, in the engine's own
// ranking order.
type RawResult struct {
	DataSourceID           int     `json:"dataSourceId"`
	DataSourceTitleShort   string  `json:"dataSourceTitleShort"`
	Curation               string  `json:"curation"`
	RecordID               string  `json:"recordId"`
	Outlink                string  `json:"outlink"`
	EntryDate              string  `json:"entryDate"`
	SortScore              float64 `json:"sortScore"`
	MatchedName            string  `json:"matchedName"`
	MatchedCanonicalSimple string  `json:"matchedCanonicalSimple"`
	MatchedCanonicalFull   string  `json:"matchedCanonicalFull"`
	CurrentName            string  `json:"currentName"`
	CurrentCanonicalFull   string  `json:"currentCanonicalFull"`
	TaxonomicStatus        string  `json:"taxonomicStatus"`
	IsSynonym              bool    `json:"isSynonym"`
	EditDistance           int     `json:"editDistance"`
	StemEditDistance       int     `json:"stemEditDistance"`
	MatchType              string  `json:"matchType"`
	ClassificationPath     string  `json:"classificationPath"`
	ClassificationRanks    string  `json:"classificationRanks"`
	ClassificationIDs      string  `json:"classificationIds"`
}

// RawDataSource is one entry of the GET /data_sources response.
type RawDataSource struct {
	ID             int    `json:"id"`
	UUID           string `json:"uuid"`
	Title          string `json:"title"`
	TitleShort     string `json:"titleShort"`
	Version        string `json:"version"`
	Description    string `json:"description"`
	HomeURL        string `json:"homeURL"`
	IsOutlinkReady bool   `json:"isOutlinkReady"`
	Curation       string `json:"curation"`
	HasTaxonData   bool   `json:"hasTaxonData"`
	RecordCount    int    `json:"recordCount"`
	UpdatedAt      string `json:"updatedAt"`
}
