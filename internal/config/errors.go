package config

import "errors"

// Configuration validation errors, returned by Config.Validate.
// Package-level sentinels allow errors.Is matching in the CLI's exit-code
// mapping while keeping human-readable messages.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidThreshold is returned when the main taxon threshold is
	// outside the [0, 1] range.
	ErrInvalidThreshold = errors.New("invalid main taxon threshold: must be between 0 and 1")

	// ErrConflictingFormats is returned when more than one output format
	// flag is set. Only one of --json, --markdown, --csv, --tsv applies.
	ErrConflictingFormats = errors.New("conflicting output formats: choose at most one of --json, --markdown, --csv, --tsv")

	// ErrInvalidDataSourceID is returned when a data source ID is not a
	// positive integer. The engine assigns only positive IDs.
	ErrInvalidDataSourceID = errors.New("invalid data source id: must be positive")

	// ErrInvalidSortKey is returned for an unknown --sort-by value.
	ErrInvalidSortKey = errors.New("invalid sort key: must be one of id, title, record-count, updated-at")
)
