package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/shopscout/backend/config"
	"github.com/shopscout/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// requestTimeout bounds a single outbound search request; a hung
	// upstream resolves through this timeout into the fallback path
	requestTimeout = 10 * time.Second

	// maxResults caps how many entries of a successful response are mapped
	maxResults = 5
)

// Client handles communication with the real-time-amazon-data RapidAPI endpoint
type Client struct {
	httpClient  *http.Client
	cfg         config.AmazonConfig
	rateLimiter *rate.Limiter
}

// NewClient creates a new Amazon search client
func NewClient(cfg config.AmazonConfig) *Client {
	// RapidAPI free plans are quota-limited; 1 req/sec with a small burst
	// keeps a busy instance inside the monthly allowance
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		cfg:         cfg,
		rateLimiter: limiter,
	}
}

// Name identifies this provider in summary section labels
func (c *Client) Name() string { return "Amazon" }

// Search looks up products for the query. It never returns an error and
// never returns an empty list: any failure, and any successful response
// that maps to zero products, degrades to the fixed fallback list.
func (c *Client) Search(ctx context.Context, query string) []domain.Product {
	products, err := c.search(ctx, query)
	if err != nil {
		log.Printf("[Amazon] search failed for query %q, using fallback: %v", query, err)
		return FallbackProducts()
	}

	log.Printf("[Amazon] found %d products for query %q", len(products), query)
	return products
}

// search performs the single outbound request and maps the response.
func (c *Client) search(ctx context.Context, query string) ([]domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	// Build request URL
	endpoint := fmt.Sprintf("%s/search", c.cfg.BaseURL)
	params := url.Values{}
	params.Add("country", c.cfg.Country)
	params.Add("query", query)
	params.Add("page", "1")
	params.Add("sort_by", c.cfg.SortBy)
	params.Add("product_condition", c.cfg.ProductCondition)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrProviderFailure, resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := mapProducts(searchResp.Data.Products)
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: response contained no products", domain.ErrProviderFailure)
	}

	return products, nil
}

// FallbackProducts returns the fixed list substituted when a live search
// cannot produce usable data. A fresh slice is returned on every call so
// callers can never mutate shared state.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{Title: "Fallback Product A", Price: "₹50,000", Rating: 4.3, Link: "https://amazon.in/fallback-a"},
		{Title: "Fallback Product B", Price: "₹45,000", Rating: 4.1, Link: "https://amazon.in/fallback-b"},
	}
}
