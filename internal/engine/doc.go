// Package engine is the sole point of contact with the GNverifier
// verification engine (https://verifier.globalnames.org).
//
// The Client converts a Request into HTTP calls against the engine's REST
// API, splitting large name lists into multiple batches, and returns the
// engine's raw structured output. It performs no caching and no result
// interpretation; normalization into the stable result model is the
// normalize package's job.
//
// Failure taxonomy:
//   - ErrEngineUnavailable: the engine could not be reached, timed out, or
//     responded with a server-side error.
//   - ErrEngineProtocol: the engine responded, but the payload could not be
//     decoded into the expected shape.
//
// A name the engine does not recognize is not a failure; it simply has no
// usable results in the raw output.
package engine
