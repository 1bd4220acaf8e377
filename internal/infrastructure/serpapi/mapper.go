package serpapi

import "github.com/shopscout/backend/internal/domain"

// searchResponse mirrors the shape of a SerpAPI google_shopping reply
type searchResponse struct {
	ShoppingResults []shoppingResult `json:"shopping_results"`
}

// shoppingResult is a single raw shopping entry. Unlike the Amazon API the
// rating is already numeric when present; absence simply leaves the zero
// value, which is the documented default.
type shoppingResult struct {
	Title  string  `json:"title"`
	Price  string  `json:"price"`
	Rating float64 `json:"rating"`
	Link   string  `json:"link"`
}

// mapProducts converts up to maxResults raw entries into domain products
func mapProducts(results []shoppingResult) []domain.Product {
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	products := make([]domain.Product, 0, len(results))
	for _, r := range results {
		price := r.Price
		if price == "" {
			price = "N/A"
		}
		link := r.Link
		if link == "" {
			link = domain.LinkUnavailable
		}

		products = append(products, domain.Product{
			Title:  r.Title,
			Price:  price,
			Rating: r.Rating,
			Link:   link,
		})
	}

	return products
}
