package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnvclient/gnvclient/internal/engine"
	"github.com/gnvclient/gnvclient/internal/model"
	"github.com/gnvclient/gnvclient/internal/normalize"
)

// Engine is the slice of the engine client the verifier needs.
// Tests substitute a stub to control raw output and count calls.
type Engine interface {
	Submit(ctx context.Context, req engine.Request) (*engine.RawOutput, error)
}

// Catalog is the data source catalog surface the verifier needs.
type Catalog interface {
	Get(ctx context.Context) ([]model.DataSource, error)
	Refresh(ctx context.Context) ([]model.DataSource, error)
}

// Options are the caller-facing verification options. The zero value means:
// all sources, best match only, no statistics.
type Options struct {
	// DataSourceIDs restricts matching to these engine-assigned source IDs.
	DataSourceIDs []int

	// SourceTitles restricts matching to sources named by title (full,
	// short, or dashed lowercase form). Titles are resolved against the
	// catalog and combined with DataSourceIDs.
	SourceTitles []string

	// AllMatches returns every candidate per name instead of the best one.
	AllMatches bool

	// Stats includes aggregate statistics in the result.
	Stats bool

	// Capitalization asks the engine to fix case errors before matching.
	Capitalization bool

	// SpeciesGroup expands binomials to their species group.
	SpeciesGroup bool

	// UninomialFuzzyMatch enables fuzzy matching for uninomial names.
	UninomialFuzzyMatch bool

	// MainTaxonThreshold overrides the engine default (0.6) when non-zero.
	MainTaxonThreshold float64
}

// Verifier combines the engine gateway, the normalizer, and the catalog
// behind the two operations the tool offers. Safe for concurrent use.
type Verifier struct {
	engine  Engine
	catalog Catalog
}

// New creates a Verifier from its collaborators.
func New(eng Engine, cat Catalog) *Verifier {
	return &Verifier{engine: eng, catalog: cat}
}

// Verify verifies the given names against the engine and returns the
// normalized result. The result has exactly one entry per input name, in
// input order. Input validation happens before any engine call: an empty
// name list or a blank name returns ErrInvalidRequest, and an unresolvable
// source title returns UnknownDataSourceError.
func (v *Verifier) Verify(ctx context.Context, names []string, opts Options) (*model.VerificationResult, error) {
	if err := validateNames(names); err != nil {
		return nil, err
	}

	sourceIDs, err := v.resolveSources(ctx, opts)
	if err != nil {
		return nil, err
	}

	req, err := engine.NewRequest(names, engine.RequestOptions{
		DataSourceIDs:           sourceIDs,
		WithAllMatches:          opts.AllMatches,
		WithStats:               opts.Stats,
		WithCapitalization:      opts.Capitalization,
		WithSpeciesGroup:        opts.SpeciesGroup,
		WithUninomialFuzzyMatch: opts.UninomialFuzzyMatch,
		MainTaxonThreshold:      opts.MainTaxonThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	raw, err := v.engine.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	return normalize.Normalize(raw, req), nil
}

// DataSources returns the engine's data source listing, served from the
// catalog cache after the first call.
func (v *Verifier) DataSources(ctx context.Context) ([]model.DataSource, error) {
	return v.catalog.Get(ctx)
}

// RefreshDataSources forces the catalog to re-fetch the listing.
func (v *Verifier) RefreshDataSources(ctx context.Context) ([]model.DataSource, error) {
	return v.catalog.Refresh(ctx)
}

// validateNames enforces the request invariant: at least one name, none
// blank after trimming.
func validateNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: no names given", ErrInvalidRequest)
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: name %d is empty", ErrInvalidRequest, i+1)
		}
	}
	return nil
}

// resolveSources combines explicit source IDs with titles resolved through
// the catalog, deduplicated and in caller order. The catalog is only
// consulted when titles were given, so plain ID filters (and unfiltered
// requests) cost no extra engine call.
func (v *Verifier) resolveSources(ctx context.Context, opts Options) ([]int, error) {
	if len(opts.SourceTitles) == 0 {
		return opts.DataSourceIDs, nil
	}

	sources, err := v.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(opts.DataSourceIDs)+len(opts.SourceTitles))
	seen := make(map[int]bool)
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range opts.DataSourceIDs {
		add(id)
	}

	for _, title := range opts.SourceTitles {
		id, ok := findByTitle(sources, title)
		if !ok {
			return nil, &UnknownDataSourceError{Name: title, Available: titles(sources)}
		}
		add(id)
	}

	return ids, nil
}

func findByTitle(sources []model.DataSource, title string) (int, bool) {
	for _, s := range sources {
		if s.MatchesTitle(title) {
			return s.ID, true
		}
	}
	return 0, false
}

func titles(sources []model.DataSource) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.Title)
	}
	return out
}
