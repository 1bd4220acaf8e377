package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopscout/backend/internal/domain"
)

// mockProvider is a test double for domain.ProductProvider
type mockProvider struct {
	name     string
	products []domain.Product
	calls    int
	queries  []string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Search(_ context.Context, query string) []domain.Product {
	m.calls++
	m.queries = append(m.queries, query)
	return m.products
}

func newTestService(amazonProducts, googleProducts []domain.Product) (*ComparisonService, *mockProvider, *mockProvider) {
	amazon := &mockProvider{name: "Amazon", products: amazonProducts}
	google := &mockProvider{name: "Google", products: googleProducts}
	return NewComparisonService(amazon, google), amazon, google
}

func TestCompare_EmptyQuery(t *testing.T) {
	queries := []string{"", "   ", "\t\n"}

	for _, q := range queries {
		svc, amazon, google := newTestService(nil, nil)

		result, err := svc.Compare(context.Background(), q)

		if !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("Compare(%q) error = %v, want ErrEmptyQuery", q, err)
		}
		if result != nil {
			t.Errorf("Compare(%q) result = %+v, want nil", q, result)
		}
		if amazon.calls != 0 || google.calls != 0 {
			t.Errorf("Compare(%q) called providers (amazon=%d google=%d), want zero calls",
				q, amazon.calls, google.calls)
		}
	}
}

func TestCompare_PopulatesAllFields(t *testing.T) {
	amazonProducts := []domain.Product{{Title: "A1", Price: "₹100", Rating: 4.2, Link: "a1"}}
	googleProducts := []domain.Product{{Title: "G1", Price: "₹90", Rating: 4.8, Link: "g1"}}
	svc, amazon, google := newTestService(amazonProducts, googleProducts)

	result, err := svc.Compare(context.Background(), "widget")
	if err != nil {
		t.Fatalf("Compare() error = %v, want nil", err)
	}

	if result.Query != "widget" {
		t.Errorf("Query = %s, want widget", result.Query)
	}
	if len(result.AmazonProducts) != 1 || result.AmazonProducts[0].Title != "A1" {
		t.Errorf("AmazonProducts = %+v, want [A1]", result.AmazonProducts)
	}
	if len(result.GoogleProducts) != 1 || result.GoogleProducts[0].Title != "G1" {
		t.Errorf("GoogleProducts = %+v, want [G1]", result.GoogleProducts)
	}
	if len(result.RankedProducts) != 2 {
		t.Fatalf("len(RankedProducts) = %d, want 2", len(result.RankedProducts))
	}
	if result.RankedProducts[0].Title != "G1" {
		t.Errorf("RankedProducts[0].Title = %s, want G1 (higher rating)", result.RankedProducts[0].Title)
	}
	if result.Summary == "" {
		t.Error("Summary is empty")
	}

	// Each provider is called exactly once with the raw query
	if amazon.calls != 1 || google.calls != 1 {
		t.Errorf("provider calls: amazon=%d google=%d, want 1 each", amazon.calls, google.calls)
	}
	if amazon.queries[0] != "widget" || google.queries[0] != "widget" {
		t.Errorf("provider queries = %v / %v, want [widget]", amazon.queries, google.queries)
	}
}

func TestCompare_EndToEnd_iPhone14(t *testing.T) {
	amazonProducts := []domain.Product{
		{Title: "iPhone 14 (Amazon)", Price: "₹58,999", Rating: 4.5, Link: "https://amazon.in/p/1"},
	}
	googleProducts := []domain.Product{
		{Title: "iPhone 14 (Google)", Price: "₹57,490", Rating: 4.0, Link: "https://shop.example.com/p/1"},
	}
	svc, _, _ := newTestService(amazonProducts, googleProducts)

	result, err := svc.Compare(context.Background(), "iPhone 14")
	if err != nil {
		t.Fatalf("Compare() error = %v, want nil", err)
	}

	if len(result.RankedProducts) != 2 {
		t.Fatalf("len(RankedProducts) = %d, want 2", len(result.RankedProducts))
	}
	if result.RankedProducts[0].Title != "iPhone 14 (Amazon)" {
		t.Errorf("RankedProducts[0] = %s, want the 4.5-rated Amazon item first", result.RankedProducts[0].Title)
	}
	if result.RankedProducts[1].Title != "iPhone 14 (Google)" {
		t.Errorf("RankedProducts[1] = %s, want the 4.0-rated Google item second", result.RankedProducts[1].Title)
	}

	for _, want := range []string{
		"**Amazon Products**",
		"**Google Products**",
		"**Top 3 Products Overall**",
		"iPhone 14 (Amazon)",
		"iPhone 14 (Google)",
	} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("Summary is missing %q:\n%s", want, result.Summary)
		}
	}

	// In the Top 3 section the Amazon item must precede the Google item
	topSection := result.Summary[strings.Index(result.Summary, "**Top 3 Products Overall**"):]
	amazonIdx := strings.Index(topSection, "iPhone 14 (Amazon)")
	googleIdx := strings.Index(topSection, "iPhone 14 (Google)")
	if amazonIdx < 0 || googleIdx < 0 || amazonIdx > googleIdx {
		t.Errorf("Top 3 section order wrong (amazon=%d google=%d):\n%s", amazonIdx, googleIdx, topSection)
	}
}

func TestCompare_Idempotent(t *testing.T) {
	amazonProducts := []domain.Product{{Title: "A", Price: "₹1", Rating: 4.3, Link: "a"}}
	googleProducts := []domain.Product{{Title: "G", Price: "₹2", Rating: 4.1, Link: "g"}}
	svc, _, _ := newTestService(amazonProducts, googleProducts)

	first, err := svc.Compare(context.Background(), "same query")
	if err != nil {
		t.Fatalf("first Compare() error = %v", err)
	}
	second, err := svc.Compare(context.Background(), "same query")
	if err != nil {
		t.Fatalf("second Compare() error = %v", err)
	}

	if first.Summary != second.Summary {
		t.Error("identical inputs produced different summaries")
	}
}

func TestCompare_SummarySectionsUseProviderNames(t *testing.T) {
	amazon := &mockProvider{name: "MarketA", products: []domain.Product{{Title: "A", Price: "₹1", Rating: 4.2, Link: "a"}}}
	google := &mockProvider{name: "MarketB", products: []domain.Product{{Title: "G", Price: "₹2", Rating: 4.1, Link: "g"}}}
	svc := NewComparisonService(amazon, google)

	result, err := svc.Compare(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	for _, want := range []string{
		"**MarketA Products**",
		"**MarketB Products**",
		"[MarketA]",
		"[MarketB]",
	} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("Summary is missing %q:\n%s", want, result.Summary)
		}
	}
}

func TestCompare_RankedIsSubsetOfMergedResults(t *testing.T) {
	amazonProducts := []domain.Product{
		{Title: "A1", Rating: 4.1},
		{Title: "A2", Rating: 3.2},
	}
	googleProducts := []domain.Product{
		{Title: "G1", Rating: 4.9},
		{Title: "G2", Rating: 2.0},
	}
	svc, _, _ := newTestService(amazonProducts, googleProducts)

	result, err := svc.Compare(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	merged := append(append([]domain.Product{}, result.AmazonProducts...), result.GoogleProducts...)
	for _, ranked := range result.RankedProducts {
		found := false
		for _, p := range merged {
			if p == ranked {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ranked product %+v is not in the merged provider results", ranked)
		}
	}
}

func TestStages_FixedOrder(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	stages := svc.stages()

	want := []string{"extract", "search-amazon", "search-google", "rank"}
	if len(stages) != len(want) {
		t.Fatalf("len(stages) = %d, want %d", len(stages), len(want))
	}
	for i, name := range want {
		if stages[i].name != name {
			t.Errorf("stages[%d].name = %s, want %s", i, stages[i].name, name)
		}
	}
}
