package database

import (
	"strings"
	"testing"

	"zeus-ai-be/internal/constant"
	"zeus-ai-be/pkg/store"
)

func sampleDataset() *store.Dataset {
	return &store.Dataset{
		Products: []map[string]interface{}{
			{"name": "Aero Running Tee", "unitsSold": 15400},
			{"name": "Flex Training Shorts", "unitsSold": 12800},
		},
		MarketTrends: []map[string]interface{}{
			{"trend": "Sustainable fabrics", "growth": "+32% YoY"},
		},
		CompetitorAnalysis: []map[string]interface{}{
			{"competitor": "Brand X", "fabric": "recycled nylon blend"},
		},
	}
}

func TestRetrieveMatchesSliceGroups(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantIDs     []string
		wantHeaders []string
	}{
		{
			name:        "products keywords",
			query:       "Show me our bestseller products",
			wantIDs:     []string{constant.SourceIDProducts},
			wantHeaders: []string{"=== PRODUCTS ==="},
		},
		{
			name:        "trends keywords",
			query:       "What emerging market shifts matter?",
			wantIDs:     []string{constant.SourceIDTrends},
			wantHeaders: []string{"=== MARKET TRENDS ==="},
		},
		{
			name:        "fabrics keywords",
			query:       "Which fabric is the competition using?",
			wantIDs:     []string{constant.SourceIDFabrics},
			wantHeaders: []string{"=== COMPETITOR FABRICS ==="},
		},
		{
			name:        "multiple groups",
			query:       "Compare product sales against market trends",
			wantIDs:     []string{constant.SourceIDProducts, constant.SourceIDTrends},
			wantHeaders: []string{"=== PRODUCTS ===", "=== MARKET TRENDS ==="},
		},
	}

	r := NewRetriever(nil)
	dataset := sampleDataset()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources, dataContext := r.Retrieve(tt.query, dataset)

			if len(sources) != len(tt.wantIDs) {
				t.Fatalf("got %d sources, want %d: %+v", len(sources), len(tt.wantIDs), sources)
			}
			for i, id := range tt.wantIDs {
				if sources[i].ID != id {
					t.Errorf("sources[%d].ID = %q, want %q", i, sources[i].ID, id)
				}
			}
			for _, header := range tt.wantHeaders {
				if !strings.Contains(dataContext, header) {
					t.Errorf("context missing %q", header)
				}
			}
			if dataContext == "" {
				t.Error("context is empty")
			}
		})
	}
}

func TestRetrieveCitationMetadata(t *testing.T) {
	r := NewRetriever(nil)

	sources, _ := r.Retrieve("bestseller products", sampleDataset())

	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	s := sources[0]
	if s.Name != constant.StoreNameProducts {
		t.Errorf("Name = %q, want %q", s.Name, constant.StoreNameProducts)
	}
	if s.Type != "database" {
		t.Errorf("Type = %q, want database", s.Type)
	}
	if s.Relevance != 0.9 {
		t.Errorf("Relevance = %v, want 0.9", s.Relevance)
	}
	if s.Snippet != constant.SnippetProducts {
		t.Errorf("Snippet = %q", s.Snippet)
	}
}

func TestRetrieveFallbackPrefixWhenNothingMatches(t *testing.T) {
	r := NewRetriever(nil)

	dataset := &store.Dataset{
		Products:     make([]map[string]interface{}, 0, 8),
		MarketTrends: make([]map[string]interface{}, 0, 6),
	}
	for i := 0; i < 8; i++ {
		dataset.Products = append(dataset.Products, map[string]interface{}{"sku": i})
	}
	for i := 0; i < 6; i++ {
		dataset.MarketTrends = append(dataset.MarketTrends, map[string]interface{}{"trend": i})
	}

	sources, dataContext := r.Retrieve("tell me something interesting", dataset)

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2 fallback citations", len(sources))
	}
	if sources[0].ID != constant.SourceIDProducts || sources[0].Snippet != constant.SnippetProductsShort {
		t.Errorf("sources[0] = %+v", sources[0])
	}
	if sources[1].ID != constant.SourceIDTrends || sources[1].Snippet != constant.SnippetTrendsShort {
		t.Errorf("sources[1] = %+v", sources[1])
	}
	// Prefix caps: 5 products, 3 trends.
	if got := strings.Count(dataContext, `"sku"`); got != 5 {
		t.Errorf("context holds %d product records, want 5", got)
	}
	if got := strings.Count(dataContext, `"trend"`); got != 3 {
		t.Errorf("context holds %d trend records, want 3", got)
	}
}

func TestRetrieveEmptyDataset(t *testing.T) {
	r := NewRetriever(nil)

	tests := []struct {
		name    string
		dataset *store.Dataset
	}{
		{"nil dataset", nil},
		{"zero-value dataset", &store.Dataset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources, dataContext := r.Retrieve("bestseller products", tt.dataset)
			if sources == nil {
				t.Error("sources is nil, want empty slice")
			}
			if len(sources) != 0 || dataContext != "" {
				t.Errorf("got %d sources, context %q; want none", len(sources), dataContext)
			}
		})
	}
}
