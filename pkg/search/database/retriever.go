// Package database implements the private-data path: a best-effort keyword
// retriever over the in-memory dataset, and an LLM answerer grounded in the
// retrieved slices. The retriever is not semantic search: it
// keyword-matches slice groups and dumps the matching records as context.
package database

import (
	"encoding/json"
	"log"
	"strings"

	"zeus-ai-be/internal/constant"
	"zeus-ai-be/pkg/search"
	"zeus-ai-be/pkg/store"
)

// keywordGroups are the five independent trigger groups tested against the
// lowercased query. Only the first three have a backing slice in the current
// dataset shape; the color and category groups are carried for parity with
// the catalog schema and fire into nothing until those slices exist.
var keywordGroups = []struct {
	name     string
	keywords []string
}{
	{"products", []string{"product", "bestseller", "sales"}},
	{"trends", []string{"trend", "emerging", "market"}},
	{"fabrics", []string{"fabric", "material", "innovation", "competitor"}},
	{"colors", []string{"color", "pattern"}},
	{"categories", []string{"adjacent", "categor", "opportunity"}},
}

type Retriever struct {
	logger *log.Logger
}

func NewRetriever(logger *log.Logger) *Retriever {
	return &Retriever{logger: logger}
}

// Retrieve selects relevant dataset slices by keyword heuristics and returns
// both the provenance list and the delimited context string. When no group
// matched but the dataset has any data, a capped prefix of the available
// slices is returned so a non-empty dataset never yields an empty context.
func (r *Retriever) Retrieve(query string, dataset *store.Dataset) ([]search.SourceCitation, string) {
	if dataset == nil {
		return []search.SourceCitation{}, ""
	}

	lower := strings.ToLower(query)
	matched := map[string]bool{}
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				matched[group.name] = true
				break
			}
		}
	}

	sources := []search.SourceCitation{}
	var context strings.Builder

	if matched["products"] && len(dataset.Products) > 0 {
		sources = append(sources, search.SourceCitation{
			ID:        constant.SourceIDProducts,
			Name:      constant.StoreNameProducts,
			Type:      string(search.SourceDatabase),
			Snippet:   constant.SnippetProducts,
			Relevance: 0.9,
		})
		context.WriteString("\n=== PRODUCTS ===\n")
		context.WriteString(prettyJSON(dataset.Products))
	}

	if matched["trends"] && len(dataset.MarketTrends) > 0 {
		sources = append(sources, search.SourceCitation{
			ID:        constant.SourceIDTrends,
			Name:      constant.StoreNameMarket,
			Type:      string(search.SourceDatabase),
			Snippet:   constant.SnippetTrends,
			Relevance: 0.85,
		})
		context.WriteString("\n=== MARKET TRENDS ===\n")
		context.WriteString(prettyJSON(dataset.MarketTrends))
	}

	if matched["fabrics"] && len(dataset.CompetitorAnalysis) > 0 {
		sources = append(sources, search.SourceCitation{
			ID:        constant.SourceIDFabrics,
			Name:      constant.StoreNameMarket,
			Type:      string(search.SourceDatabase),
			Snippet:   constant.SnippetFabrics,
			Relevance: 0.88,
		})
		context.WriteString("\n=== COMPETITOR FABRICS ===\n")
		context.WriteString(prettyJSON(dataset.CompetitorAnalysis))
	}

	// No specific match: include a capped prefix of whatever exists.
	if context.Len() == 0 && !dataset.IsEmpty() {
		if len(dataset.Products) > 0 {
			sources = append(sources, search.SourceCitation{
				ID:        constant.SourceIDProducts,
				Name:      constant.StoreNameProducts,
				Type:      string(search.SourceDatabase),
				Snippet:   constant.SnippetProductsShort,
				Relevance: 0.8,
			})
			context.WriteString("\n=== PRODUCTS ===\n")
			context.WriteString(prettyJSON(capRecords(dataset.Products, 5)))
		}
		if len(dataset.MarketTrends) > 0 {
			sources = append(sources, search.SourceCitation{
				ID:        constant.SourceIDTrends,
				Name:      constant.StoreNameMarket,
				Type:      string(search.SourceDatabase),
				Snippet:   constant.SnippetTrendsShort,
				Relevance: 0.75,
			})
			context.WriteString("\n=== MARKET TRENDS ===\n")
			context.WriteString(prettyJSON(capRecords(dataset.MarketTrends, 3)))
		}
	}

	if r.logger != nil {
		r.logger.Printf("[RETRIEVER] %d sources, context=%d bytes", len(sources), context.Len())
	}

	return sources, context.String()
}

func capRecords(records []map[string]interface{}, max int) []map[string]interface{} {
	if len(records) <= max {
		return records
	}
	return records[:max]
}

func prettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
