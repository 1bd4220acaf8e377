package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// topOverall is how many products the overall ranking keeps
const topOverall = 3

// rankProducts concatenates the Amazon results followed by the Google
// results, sorts descending by rating, and truncates to topOverall. The
// sort is stable, so products that tie on rating keep their concatenation
// order (Amazon before Google, original order within each list). Nil input
// lists are treated as empty.
func rankProducts(amazon, google []domain.Product) []domain.Product {
	merged := make([]domain.Product, 0, len(amazon)+len(google))
	merged = append(merged, amazon...)
	merged = append(merged, google...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rating > merged[j].Rating
	})

	if len(merged) > topOverall {
		merged = merged[:topOverall]
	}
	return merged
}

// renderSummary produces the human-readable comparison report: the echoed
// query, one section per provider labeled with the provider's name, and
// the top-3 overall section. Sections with no items still render their
// header. Pure and deterministic.
func renderSummary(query, amazonName, googleName string, amazon, google, ranked []domain.Product) string {
	lines := []string{
		fmt.Sprintf("🔍 **Extracted product name:** %s", query),
		"",
	}

	lines = append(lines, fmt.Sprintf("--- 🛒 **%s Products** ---", amazonName))
	lines = appendItems(lines, amazon, fmt.Sprintf(" [%s]", amazonName))

	lines = append(lines, fmt.Sprintf("--- 🛒 **%s Products** ---", googleName))
	lines = appendItems(lines, google, fmt.Sprintf(" [%s]", googleName))

	lines = append(lines, "=== 🏆 **Top 3 Products Overall** ===")
	lines = appendItems(lines, ranked, "")

	return strings.Join(lines, "\n")
}

// appendItems renders one section's product lines with 1-based indices
func appendItems(lines []string, products []domain.Product, tag string) []string {
	for i, p := range products {
		lines = append(lines,
			fmt.Sprintf("%d. %s - %s - %s ⭐%s", i+1, p.Title, p.Price, formatRating(p.Rating), tag),
			fmt.Sprintf("   Link: %s", p.Link),
		)
	}
	return lines
}

// formatRating renders a rating with one decimal (4.5, 4.0, 0.0), the way
// provider star ratings are displayed
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}
