package catalog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gnvclient/gnvclient/internal/engine"
	"github.com/gnvclient/gnvclient/internal/model"
)

// Gateway is the slice of the engine client the catalog needs.
// Tests substitute a fake to count and fail listing calls.
type Gateway interface {
	ListSources(ctx context.Context) ([]engine.RawDataSource, error)
}

// Catalog is the process-scoped data source cache. Construct it with New,
// share it between callers, and reset it between test cases by constructing
// a fresh one; there is no package-level state.
type Catalog struct {
	gateway Gateway
	store   *Store
	logger  *slog.Logger

	// cached holds the current listing. Swapped atomically so readers never
	// block on a fetch or refresh in progress.
	cached atomic.Pointer[[]model.DataSource]

	// fetchMu serializes cold-start fetches so concurrent first calls do
	// not each hit the engine.
	fetchMu sync.Mutex
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithStore attaches a disk cache. Without one the catalog is memory-only.
func WithStore(store *Store) CatalogOption {
	return func(c *Catalog) {
		c.store = store
	}
}

// WithLogger sets the logger used for non-fatal cache events.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates a Catalog backed by the given gateway.
func New(gateway Gateway, opts ...CatalogOption) *Catalog {
	c := &Catalog{gateway: gateway}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Get returns the data source listing, fetching it on first use.
// The listing is ordered as the engine reports it. The returned slice is
// shared; callers must not modify it.
func (c *Catalog) Get(ctx context.Context) ([]model.DataSource, error) {
	if cached := c.cached.Load(); cached != nil {
		return *cached, nil
	}

	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	// Another caller may have completed the fetch while we waited.
	if cached := c.cached.Load(); cached != nil {
		return *cached, nil
	}

	// Try the disk cache before touching the engine.
	if c.store != nil {
		sources, fresh, err := c.store.Load(ctx)
		if err != nil {
			c.logger.Warn("catalog disk cache read failed", "error", err)
		} else if fresh && len(sources) > 0 {
			c.cached.Store(&sources)
			return sources, nil
		}
	}

	return c.fetch(ctx)
}

// Refresh re-fetches the listing from the engine, bypassing the disk cache.
// On failure the previously cached listing (if any) stays in place and keeps
// serving Get.
func (c *Catalog) Refresh(ctx context.Context) ([]model.DataSource, error) {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()
	return c.fetch(ctx)
}

// fetch pulls the listing via the gateway, updates the caches, and returns
// it. Callers hold fetchMu.
func (c *Catalog) fetch(ctx context.Context) ([]model.DataSource, error) {
	raw, err := c.gateway.ListSources(ctx)
	if err != nil {
		return nil, err
	}

	sources := make([]model.DataSource, 0, len(raw))
	for _, r := range raw {
		sources = append(sources, fromRaw(r))
	}

	c.cached.Store(&sources)

	if c.store != nil {
		if err := c.store.Save(ctx, sources); err != nil {
			// A cache write failure must not fail the listing call.
			c.logger.Warn("catalog disk cache write failed", "error", err)
		}
	}

	return sources, nil
}

// fromRaw converts one engine listing entry into the domain model.
func fromRaw(r engine.RawDataSource) model.DataSource {
	return model.DataSource{
		ID:             r.ID,
		UUID:           r.UUID,
		Title:          r.Title,
		TitleShort:     r.TitleShort,
		Version:        r.Version,
		Description:    r.Description,
		HomeURL:        r.HomeURL,
		IsOutlinkReady: r.IsOutlinkReady,
		Curation:       r.Curation,
		HasTaxonData:   r.HasTaxonData,
		RecordCount:    r.RecordCount,
		UpdatedAt:      r.UpdatedAt,
	}
}
