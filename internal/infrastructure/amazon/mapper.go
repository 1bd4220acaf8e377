package amazon

import (
	"encoding/json"
	"strconv"

	"github.com/shopscout/backend/internal/domain"
)

// searchResponse mirrors the shape of a real-time-amazon-data search reply
type searchResponse struct {
	Data struct {
		Products []productEntry `json:"products"`
	} `json:"data"`
}

// productEntry is a single raw result entry. The star rating is kept raw
// because the API returns it as a JSON string or a number depending on the
// listing.
type productEntry struct {
	Title      string          `json:"product_title"`
	Price      string          `json:"product_price"`
	StarRating json.RawMessage `json:"product_star_rating"`
	URL        string          `json:"product_url"`
}

// mapProducts converts up to maxResults raw entries into domain products
func mapProducts(entries []productEntry) []domain.Product {
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}

	products := make([]domain.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, domain.Product{
			Title:  e.Title,
			Price:  priceOrDefault(e.Price),
			Rating: parseStarRating(e.StarRating),
			Link:   linkOrSentinel(e.URL),
		})
	}

	return products
}

// parseStarRating parses a raw star-rating value that may be a JSON string
// ("4.3"), a number (4.3), null, or absent. Anything unparseable maps to 0.0.
func parseStarRating(raw json.RawMessage) float64 {
	s := string(raw)
	if s == "" || s == "null" {
		return 0.0
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "" {
		return 0.0
	}

	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return rating
}

// priceOrDefault substitutes "N/A" when the listing carries no display price
func priceOrDefault(price string) string {
	if price == "" {
		return "N/A"
	}
	return price
}

// linkOrSentinel substitutes the sentinel link when the listing carries no URL
func linkOrSentinel(link string) string {
	if link == "" {
		return domain.LinkUnavailable
	}
	return link
}
