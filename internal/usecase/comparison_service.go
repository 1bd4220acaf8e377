package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// State is the value threaded through the pipeline stages for one query.
// Stages receive a State by value and return a new one with only their own
// fields set; fields populate strictly in pipeline order and are never
// overwritten by a later stage. Every invocation starts from a fresh State,
// so concurrent comparisons share nothing.
type State struct {
	Query          string
	AmazonProducts []domain.Product
	GoogleProducts []domain.Product
	RankedProducts []domain.Product
	Summary        string
}

// stage is one step of the fixed sequential pipeline
type stage struct {
	name string
	run  func(ctx context.Context, st State) State
}

// ComparisonService runs the fixed four-stage comparison pipeline:
// extract -> search-amazon -> search-google -> rank. The topology is a
// plain ordered list; there are no conditional edges, retries, or cycles.
type ComparisonService struct {
	amazon domain.ProductProvider
	google domain.ProductProvider
}

// NewComparisonService creates a comparison service over the two providers
func NewComparisonService(amazon, google domain.ProductProvider) *ComparisonService {
	return &ComparisonService{
		amazon: amazon,
		google: google,
	}
}

// Compare runs one query through the pipeline and returns the accumulated
// comparison. Empty and whitespace-only queries are rejected before any
// stage runs, so no provider is ever called for them. Provider failures
// never surface here: the clients degrade to their fallback lists.
func (s *ComparisonService) Compare(ctx context.Context, query string) (*domain.Comparison, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	st := State{Query: query}
	for _, stg := range s.stages() {
		st = stg.run(ctx, st)
		log.Printf("[Pipeline] stage %s complete for query %q", stg.name, query)
	}

	return &domain.Comparison{
		Query:          st.Query,
		AmazonProducts: st.AmazonProducts,
		GoogleProducts: st.GoogleProducts,
		RankedProducts: st.RankedProducts,
		Summary:        st.Summary,
	}, nil
}

// stages returns the pipeline in execution order
func (s *ComparisonService) stages() []stage {
	return []stage{
		{name: "extract", run: s.extractQuery},
		{name: "search-amazon", run: s.searchAmazon},
		{name: "search-google", run: s.searchGoogle},
		{name: "rank", run: s.rank},
	}
}

// extractQuery passes the raw query through unchanged. It is the slot where
// query normalization or rewriting would be added.
func (s *ComparisonService) extractQuery(_ context.Context, st State) State {
	return st
}

func (s *ComparisonService) searchAmazon(ctx context.Context, st State) State {
	st.AmazonProducts = s.amazon.Search(ctx, st.Query)
	return st
}

func (s *ComparisonService) searchGoogle(ctx context.Context, st State) State {
	st.GoogleProducts = s.google.Search(ctx, st.Query)
	return st
}

func (s *ComparisonService) rank(_ context.Context, st State) State {
	st.RankedProducts = rankProducts(st.AmazonProducts, st.GoogleProducts)
	st.Summary = renderSummary(st.Query, s.amazon.Name(), s.google.Name(),
		st.AmazonProducts, st.GoogleProducts, st.RankedProducts)
	return st
}
