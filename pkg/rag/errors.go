package rag

import "errors"

// Readiness errors let callers distinguish "system unavailable" from
// "no matches". They are returned when the backing sub-component never
// initialized, never when a search legitimately finds nothing.
var (
	// ErrPipelineNotReady means the answer pipeline was not constructed
	// (retriever or generation model missing at startup).
	ErrPipelineNotReady = errors.New("rag pipeline is not initialized")

	// ErrIndexNotReady means the vector index (or its embedding function)
	// was not constructed.
	ErrIndexNotReady = errors.New("vector index is not initialized")
)
