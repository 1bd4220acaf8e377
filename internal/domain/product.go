package domain

// LinkUnavailable is the sentinel link used when a provider result carries no URL.
const LinkUnavailable = "Link not available"

// Product is a single normalized search result from either provider.
// Price keeps the provider's display formatting (e.g. "₹50,000"); it is
// never parsed. Products are value types and are not mutated after creation.
type Product struct {
	Title  string  `json:"title"`
	Price  string  `json:"price"`
	Rating float64 `json:"rating"`
	Link   string  `json:"link"`
}

// Comparison is the result of one full pipeline run for a single query.
type Comparison struct {
	Query          string    `json:"query"`
	AmazonProducts []Product `json:"amazonProducts"`
	GoogleProducts []Product `json:"googleProducts"`
	RankedProducts []Product `json:"rankedProducts"`
	Summary        string    `json:"summary"`
}

// CompareRequest is the body of a comparison request from the HTTP surface.
type CompareRequest struct {
	Query string `json:"query" binding:"required"`
}
