package statement

import "errors"

// Per-file error taxonomy. The ingestion coordinator classifies every failure
// with errors.Is against these sentinels; none of them aborts a batch run.
var (
	// ErrInvalidFilename means the file name does not match any accepted
	// naming convention.
	ErrInvalidFilename = errors.New("invalid statement filename")

	// ErrUnknownLocation means the name parsed cleanly but its location code
	// is not in the registry.
	ErrUnknownLocation = errors.New("unknown location code")

	// ErrDocumentRead means the underlying document could not be opened or
	// parsed. Recoverable: the file is skipped, the batch continues.
	ErrDocumentRead = errors.New("failed to read document")

	// ErrNoFacts means extraction ran but matched zero vocabulary labels.
	// The statement header is still persisted so an operator can follow up
	// with a manual entry.
	ErrNoFacts = errors.New("no line items extracted")

	// ErrDuplicatePeriod means a header already exists for the same
	// (location, year, month).
	ErrDuplicatePeriod = errors.New("statement already exists for period")
)
