package verifier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned for input the verifier rejects before
// contacting the engine: an empty name list, or a name that is empty after
// trimming. It is wrapped with the specific problem; match with errors.Is.
var ErrInvalidRequest = errors.New("invalid verification request")

// UnknownDataSourceError is returned when a requested data source title does
// not match any source in the engine's catalog. It carries the titles that
// would have matched, for the CLI to show.
type UnknownDataSourceError struct {
	// Name is the title the caller asked for.
	Name string

	// Available lists the valid data source titles.
	Available []string
}

// Error implements the error interface.
func (e *UnknownDataSourceError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown data source %q", e.Name)
	}
	return fmt.Sprintf("unknown data source %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Is makes errors.Is(err, ErrInvalidRequest) true for unknown data sources,
// since both are input-validation failures.
func (e *UnknownDataSourceError) Is(target error) bool {
	return target == ErrInvalidRequest
}
