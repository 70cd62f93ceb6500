package hummbl

import "errors"

var (
	// ErrInvalidInput is returned when the caller-supplied statement
	// violates preconditions (empty or oversized). It is raised before
	// any pipeline stage runs.
	ErrInvalidInput = errors.New("hummbl: invalid input")

	// ErrInvariantViolation is returned when an internal algorithmic
	// invariant is broken (e.g. a cycle in the dependency graph). This
	// indicates a resolver defect, never a data problem, and should not
	// be caught and retried.
	ErrInvariantViolation = errors.New("hummbl: invariant violation")

	// ErrUnsupportedFormat is returned for unrecognized statement file formats.
	ErrUnsupportedFormat = errors.New("hummbl: unsupported statement format")

	// ErrParsingFailed is returned when a statement file cannot be read.
	ErrParsingFailed = errors.New("hummbl: parsing failed")

	// ErrStoreClosed is returned when operating on a closed run log store.
	ErrStoreClosed = errors.New("hummbl: store is closed")
)
