package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a comparison is requested with an empty query
	ErrEmptyQuery = errors.New("product query must not be empty")

	// ErrProviderFailure is returned when a provider request fails; provider
	// clients recover from it internally by substituting their fallback list
	ErrProviderFailure = errors.New("provider request failed")
)
