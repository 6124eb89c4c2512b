package engine

import "errors"

// Engine call errors.
// These errors are returned by Client.Submit and Client.ListSources and
// wrapped with call context (URL, batch index) via fmt.Errorf("%w", ...).
// Callers should match them with errors.Is.
var (
	// ErrEngineUnavailable is returned when the engine could not be reached:
	// connection failure, request timeout, or a 5xx response. No partial
	// result accompanies this error.
	ErrEngineUnavailable = errors.New("verification engine unavailable")

	// ErrEngineProtocol is returned when the engine responded but the payload
	// could not be parsed into the expected structure, or a required field
	// (such as the echoed input name) is missing.
	ErrEngineProtocol = errors.New("verification engine returned malformed output")

	// ErrInvalidThreshold is returned by NewRequest when the main taxon
	// threshold is outside the [0, 1] range.
	ErrInvalidThreshold = errors.New("main taxon threshold must be between 0 and 1")
)
