package engine

import (
	"context"
	"fmt"
)

// ListSources fetches the engine's listing of available data sources.
// The listing is returned verbatim; caching and conversion into the domain
// model belong to the catalog package.
func (c *Client) ListSources(ctx context.Context) ([]RawDataSource, error) {
	var out []RawDataSource
	url := c.baseURL + "/data_sources"
	if err := c.doJSON(ctx, "GET", url, nil, &out); err != nil {
		return nil, err
	}

	for i, src := range out {
		if src.ID <= 0 {
			return nil, fmt.Errorf("%w: data source entry %d has no id", ErrEngineProtocol, i)
		}
	}

	return out, nil
}
