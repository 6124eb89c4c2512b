// Package verifier is the single entry point for scientific name
// verification, used by both the CLI and library callers.
//
// A Verifier validates input, builds the engine request, delegates the call
// to the engine gateway, and hands the raw output to the normalizer. It
// keeps no state of its own beyond the injected collaborators, so one
// Verifier may serve concurrent callers.
//
// Three failure classes cross this boundary, so callers can map them to
// exit codes or their own error handling:
//   - ErrInvalidRequest (and UnknownDataSourceError): bad input, reported
//     before any engine call is made
//   - engine.ErrEngineUnavailable: the engine could not be reached
//   - engine.ErrEngineProtocol: the engine's output was malformed
package verifier
