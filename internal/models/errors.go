package models

import "errors"

// Sentinel errors for the pipeline taxonomy. Ambiguity is a response branch,
// not an error. ErrExternalLayerUnavailable never crosses the service
// boundary; the composer recovers it by omitting the synthesis section.
var (
	ErrOutOfScope               = errors.New("question outside the supported analytical scope")
	ErrInsufficientData         = errors.New("insufficient data after fallback")
	ErrExternalLayerUnavailable = errors.New("reformulation layer unavailable")
)
