// Package normalize maps the engine's raw verification output into the
// stable result model.
//
// The normalizer is the boundary that shields the rest of the tool (and
// library callers) from the engine's output quirks: entries may come back in
// any order, entries may be missing for unrecognized names, and optional
// fields may be absent. The output always has one entry per requested name,
// in request order, with candidates kept in the engine's own ranking.
package normalize
