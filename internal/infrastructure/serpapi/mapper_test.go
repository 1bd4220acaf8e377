package serpapi

import (
	"testing"

	"github.com/shopscout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProducts_FieldMapping(t *testing.T) {
	results := []shoppingResult{
		{Title: "Pixel 9", Price: "₹74,999", Rating: 4.4, Link: "https://shop.example.com/pixel"},
	}

	products := mapProducts(results)

	require.Len(t, products, 1)
	assert.Equal(t, domain.Product{
		Title:  "Pixel 9",
		Price:  "₹74,999",
		Rating: 4.4,
		Link:   "https://shop.example.com/pixel",
	}, products[0])
}

func TestMapProducts_Defaults(t *testing.T) {
	results := []shoppingResult{{Title: "Sparse Result"}}

	products := mapProducts(results)

	require.Len(t, products, 1)
	assert.Equal(t, "N/A", products[0].Price)
	assert.Equal(t, 0.0, products[0].Rating)
	assert.Equal(t, domain.LinkUnavailable, products[0].Link)
}

func TestMapProducts_CapsAtMaxResults(t *testing.T) {
	results := make([]shoppingResult, 9)
	for i := range results {
		results[i] = shoppingResult{Title: "Item"}
	}

	assert.Len(t, mapProducts(results), maxResults)
}

func TestMapProducts_Empty(t *testing.T) {
	assert.Empty(t, mapProducts(nil))
}
