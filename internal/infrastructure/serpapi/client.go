package serpapi

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
	requestTimeout = 10 * time.Second
	maxResults     = 5
)

// Client handles communication with the SerpAPI Google Shopping engine
type Client struct {
	httpClient  *http.Client
	cfg         config.SerpAPIConfig
	rateLimiter *rate.Limiter
}

// NewClient creates a new Google Shopping search client
func NewClient(cfg config.SerpAPIConfig) *Client {
	// SerpAPI meters by monthly searches; keep the same 1 req/sec ceiling
	// as the Amazon client
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
func (c *Client) Name() string { return "Google" }

// Search looks up products for the query. Same contract as the Amazon
// client: failures and empty responses degrade to the fallback list, and
// neither affects nor depends on the other provider.
func (c *Client) Search(ctx context.Context, query string) []domain.Product {
	products, err := c.search(ctx, query)
	if err != nil {
		log.Printf("[SerpAPI] search failed for query %q, using fallback: %v", query, err)
		return FallbackProducts()
	}

	log.Printf("[SerpAPI] found %d products for query %q", len(products), query)
	return products
}

func (c *Client) search(ctx context.Context, query string) ([]domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	// Build request URL
	endpoint := fmt.Sprintf("%s/search.json", c.cfg.BaseURL)
	params := url.Values{}
	params.Add("q", query)
	params.Add("engine", "google_shopping")
	params.Add("hl", c.cfg.Locale)
	params.Add("gl", c.cfg.Country)
	params.Add("api_key", c.cfg.APIKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

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

	products := mapProducts(searchResp.ShoppingResults)
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: response contained no shopping results", domain.ErrProviderFailure)
	}

	return products, nil
}

// FallbackProducts returns the fixed list substituted when a live search
// cannot produce usable data.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{Title: "Fallback Google Product A", Price: "₹48,000", Rating: 4.0, Link: "https://google.com/fallback-a"},
		{Title: "Fallback Google Product B", Price: "₹52,000", Rating: 4.2, Link: "https://google.com/fallback-b"},
	}
}
