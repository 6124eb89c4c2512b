// Package model defines the core data structures used throughout gnvclient.
//
// This package contains the following main types:
//   - DataSource: One nomenclatural database the verifier engine can query
//   - MatchCandidate: A single proposed match for an input name
//   - NameMatch: All candidates for one input name
//   - VerificationResult: The full, ordered outcome of one verification call
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (engine, normalize, catalog, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// the local catalog cache.
package model
