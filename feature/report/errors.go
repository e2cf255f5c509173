package report

import "errors"

// Error kinds surfaced by the pipeline. Stages wrap them with context via
// fmt.Errorf and callers match them with errors.Is.
var (
	// ErrSourceUnavailable indicates an event source or the registry store
	// could not be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSchemaMismatch indicates an event source is missing a required
	// column or holds a value of the wrong type.
	ErrSchemaMismatch = errors.New("source schema mismatch")

	// ErrMalformedTimestamp indicates a cheater registry ban_time does not
	// match the expected "2006-01-02 15:04:05" layout.
	ErrMalformedTimestamp = errors.New("malformed ban timestamp")

	// ErrSinkUnavailable indicates the report store could not be opened or
	// written.
	ErrSinkUnavailable = errors.New("report sink unavailable")
)
