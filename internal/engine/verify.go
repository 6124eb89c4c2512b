package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Submit sends the verification request to the engine and returns its raw
// structured output.
//
// When the request carries more names than the batch limit, it is split into
// contiguous batches that are submitted with bounded concurrency and
// reassembled into one RawOutput in submission order. A batch boundary never
// splits the match group of a single name, because the engine groups output
// per queried name. Any failed batch fails the whole call: a partial
// name-to-result mapping is never returned.
func (c *Client) Submit(ctx context.Context, req Request) (*RawOutput, error) {
	if len(req.Names) <= c.batchLimit {
		out, err := c.submitBatch(ctx, req, req.Names)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	batches := splitNames(req.Names, c.batchLimit)
	outputs := make([]*RawOutput, len(batches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, batch := range batches {
		g.Go(func() error {
			out, err := c.submitBatch(ctx, req, batch)
			if err != nil {
				return fmt.Errorf("batch %d/%d (%d names): %w", i+1, len(batches), len(batch), err)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeOutputs(outputs), nil
}

// submitBatch performs one POST /verifications call for a slice of names.
func (c *Client) submitBatch(ctx context.Context, req Request, names []string) (*RawOutput, error) {
	var out RawOutput
	url := c.baseURL + "/verifications"
	if err := c.doJSON(ctx, "POST", url, req.payload(names), &out); err != nil {
		return nil, err
	}

	// The echoed queried name is the only correlation key the normalizer
	// has. An entry without it makes the whole output unusable.
	for i, name := range out.Names {
		if name.Name == "" {
			return nil, fmt.Errorf("%w: names[%d] is missing the queried name echo", ErrEngineProtocol, i)
		}
	}

	return &out, nil
}

// splitNames cuts the name list into contiguous batches of at most limit
// names each, preserving order.
func splitNames(names []string, limit int) [][]string {
	batches := make([][]string, 0, (len(names)+limit-1)/limit)
	for start := 0; start < len(names); start += limit {
		end := min(start+limit, len(names))
		batches = append(batches, names[start:end])
	}
	return batches
}

// mergeOutputs concatenates per-batch outputs into one RawOutput.
// Name entries keep batch submission order. The metadata of the first batch
// is kept as the base, with the name count summed across batches; the
// engine's statistics blocks are per-batch and cannot be merged, so the
// normalizer recomputes statistics from the merged name entries instead.
func mergeOutputs(outputs []*RawOutput) *RawOutput {
	merged := &RawOutput{Metadata: outputs[0].Metadata}
	merged.Metadata.NamesNumber = 0
	batched := len(outputs) > 1

	for _, out := range outputs {
		merged.Metadata.NamesNumber += out.Metadata.NamesNumber
		merged.Names = append(merged.Names, out.Names...)
	}

	if batched {
		// Per-batch taxon statistics would misrepresent the full list.
		merged.Metadata.StatsNamesNum = 0
		merged.Metadata.MainTaxon = ""
		merged.Metadata.MainTaxonPercentage = 0
		merged.Metadata.Kingdom = ""
		merged.Metadata.KingdomPercentage = 0
		merged.Metadata.Kingdoms = nil
	}

	return merged
}
