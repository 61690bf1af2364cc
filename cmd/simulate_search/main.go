package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"zeus-ai-be/pkg/search"
	"zeus-ai-be/pkg/search/analyzer"
	"zeus-ai-be/pkg/search/composer"
	"zeus-ai-be/pkg/search/database"
	"zeus-ai-be/pkg/search/online"
	"zeus-ai-be/pkg/store"

	"github.com/fatih/color"
)

// Offline dry-run of the search pipeline pieces that do not need a
// live LLM: routing keywords, sanitization, database retrieval, stub
// online sources and section splitting. Useful when tuning keyword
// groups without burning API credits.

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sampleDataset() *store.Dataset {
	return &store.Dataset{
		Products: []map[string]interface{}{
			{"name": "Aero Running Tee", "category": "tops", "unitsSold": 15400},
			{"name": "Flex Training Shorts", "category": "bottoms", "unitsSold": 12800},
			{"name": "Thermal Base Layer", "category": "tops", "unitsSold": 9100},
		},
		MarketTrends: []map[string]interface{}{
			{"trend": "Sustainable fabrics", "growth": "+32% YoY"},
			{"trend": "Athleisure crossover", "growth": "+18% YoY"},
		},
		CompetitorAnalysis: []map[string]interface{}{
			{"competitor": "Brand X", "fabric": "recycled nylon blend"},
		},
	}
}

func main() {
	color.Cyan("🔍 Search Pipeline Dry Run\n")

	logger := log.New(os.Stdout, "[SIM] ", log.LstdFlags)
	dataset := sampleDataset()

	queries := []string{
		"What are our bestseller products?",
		"What fabric innovations are competitors using?",
		"What is trending on social media for activewear?",
	}

	for _, q := range queries {
		color.Yellow("\nQUERY: %s", q)

		needsOnline := analyzer.NeedsOnlineResearch(q)
		sanitized := analyzer.SanitizeQuery(q)
		if needsOnline {
			color.Green("routing: online research triggered")
		} else {
			color.Green("routing: database only")
		}
		fmt.Printf("sanitized: %q\n", sanitized)

		retriever := database.NewRetriever(logger)
		sources, dataContext := retriever.Retrieve(q, dataset)
		color.Green("database sources: %d (context %d bytes)", len(sources), len(dataContext))
		prettyPrint(sources)

		if needsOnline {
			onlineSources := online.GenerateSources(sanitized)
			color.Green("online sources: %d", len(onlineSources))
			prettyPrint(onlineSources)
		}
	}

	color.Yellow("\nSECTION SPLIT SAMPLE")
	raw := "[DB] Your top seller is the Aero Running Tee. [Online] Competitors are moving to recycled nylon."
	sections := composer.SplitSections(raw,
		[]string{"db-products"},
		search.SourceIDs(online.GenerateSources("fabric innovation")),
	)
	prettyPrint(sections)

	color.Cyan("\n✅ Done")
}
