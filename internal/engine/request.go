package engine

// DefaultMainTaxonThreshold is the engine's default for the share of matched
// names a clade must reach before it is reported as the main taxon.
const DefaultMainTaxonThreshold = 0.6

// Request is an immutable description of one verification call: the names to
// verify plus the engine options that affect matching. A Request is built
// once per call and discarded after use; it carries no connection state.
type Request struct {
	// Names is the ordered list of name strings to verify. Order is
	// preserved end to end so results can be correlated back to inputs.
	Names []string

	// DataSourceIDs restricts matching to the given data sources.
	// Empty means all sources.
	DataSourceIDs []int

	// WithAllMatches requests every candidate per name instead of only the
	// engine's best match.
	WithAllMatches bool

	// WithStats requests aggregate statistics over the whole name list.
	WithStats bool

	// WithCapitalization asks the engine to fix case errors in input names
	// before matching.
	WithCapitalization bool

	// WithSpeciesGroup expands binomials to their species group during
	// matching.
	WithSpeciesGroup bool

	// WithUninomialFuzzyMatch enables fuzzy matching for uninomial names,
	// which the engine disables by default because of the false-positive
	// rate.
	WithUninomialFuzzyMatch bool

	// MainTaxonThreshold is the fraction of matched names a clade must reach
	// to be reported as the main taxon. Must be in [0, 1].
	MainTaxonThreshold float64
}

// NewRequest builds a Request with the given names and options, applying the
// engine default for the main taxon threshold when opts leaves it zero.
// It returns ErrInvalidThreshold for a threshold outside [0, 1]. Name
// validation (non-empty list, non-blank entries) is the facade's concern and
// happens before a Request is built.
func NewRequest(names []string, opts RequestOptions) (Request, error) {
	threshold := opts.MainTaxonThreshold
	if threshold == 0 {
		threshold = DefaultMainTaxonThreshold
	}
	if threshold < 0 || threshold > 1 {
		return Request{}, ErrInvalidThreshold
	}

	return Request{
		Names:                   names,
		DataSourceIDs:           opts.DataSourceIDs,
		WithAllMatches:          opts.WithAllMatches,
		WithStats:               opts.WithStats,
		WithCapitalization:      opts.WithCapitalization,
		WithSpeciesGroup:        opts.WithSpeciesGroup,
		WithUninomialFuzzyMatch: opts.WithUninomialFuzzyMatch,
		MainTaxonThreshold:      threshold,
	}, nil
}

// RequestOptions carries the optional knobs for NewRequest. The zero value
// is valid and means: all sources, best match only, no stats, engine-default
// threshold.
type RequestOptions struct {
	DataSourceIDs           []int
	WithAllMatches          bool
	WithStats               bool
	WithCapitalization      bool
	WithSpeciesGroup        bool
	WithUninomialFuzzyMatch bool
	MainTaxonThreshold      float64
}

// verificationPayload is the JSON body of a POST /verifications call.
// Field names follow the engine's wire format.
type verificationPayload struct {
	NameStrings             []string `json:"nameStrings"`
	DataSources             []int    `json:"dataSources"`
	WithAllMatches          bool     `json:"withAllMatches"`
	WithCapitalization      bool     `json:"withCapitalization"`
	WithSpeciesGroup        bool     `json:"withSpeciesGroup"`
	WithUninomialFuzzyMatch bool     `json:"withUninomialFuzzyMatch"`
	WithStats               bool     `json:"withStats"`
	MainTaxonThreshold      float64  `json:"mainTaxonThreshold"`
}

// payload builds the wire body for one batch of names. The batch is a
// contiguous slice of the request's name list; all other options are
// repeated verbatim on every batch.
func (r Request) payload(names []string) verificationPayload {
	sources := r.DataSourceIDs
	if sources == nil {
		// The engine treats an empty list as "all sources"; send [] rather
		// than null to match its documented request shape.
		sources = []int{}
	}
	return verificationPayload{
		NameStrings:             names,
		DataSources:             sources,
		WithAllMatches:          r.WithAllMatches,
		WithCapitalization:      r.WithCapitalization,
		WithSpeciesGroup:        r.WithSpeciesGroup,
		WithUninomialFuzzyMatch: r.WithUninomialFuzzyMatch,
		WithStats:               r.WithStats,
		MainTaxonThreshold:      r.MainTaxonThreshold,
	}
}
