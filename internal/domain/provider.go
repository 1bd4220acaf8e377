package domain

import "context"

// ProductProvider defines the interface for one external product search API.
//
// Search never returns an error and never returns an empty list: any
// failure (non-200 status, transport error, timeout, decode error) or
// empty-but-successful response degrades to the provider's fixed fallback
// list inside the implementation. Implementations must be safe for
// concurrent use.
type ProductProvider interface {
	// Name identifies the provider in summary section labels, e.g. "Amazon".
	Name() string

	// Search returns up to 5 normalized products for the query.
	Search(ctx context.Context, query string) []Product
}
