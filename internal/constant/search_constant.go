package constant

// Routing triggers and canned pipeline strings live here as named tables so
// tests can assert against them by name instead of string-matching prose.

// OnlineTriggerKeywords force requiresOnline=true whenever one of them
// appears in the lowercased query. The same list backs the analyzer prompt
// and the deterministic keyword fallback, so the override cannot drift
// between the LLM path and the fallback paths.
var OnlineTriggerKeywords = []string{
	"competitor",
	"innovation",
	"fabric",
	"traction",
	"trending",
	"industry trend",
}

// SanitizerStopWords are stripped (case-insensitive, whole-word) from the
// query to produce the fallback sanitized search query.
var SanitizerStopWords = []string{"our", "my", "company", "internal"}

// Attribution markers the compositor instructs the model to emit. The
// section parser additionally tolerates case variants and the synonyms
// listed in composer.
const (
	MarkerDatabase = "[DB]"
	MarkerOnline   = "[Online]"
)

// Canned answers. Branch meanings are distinct and user-visible: the first
// says "we found sources but could not summarize", the second "we found
// nothing at all".
const (
	AnswerDatabaseIncomplete = "I found relevant information in your database, but was unable to generate a complete answer. Please try rephrasing your question."
	AnswerUnavailable        = "I apologize, but I was unable to generate a response. Please try rephrasing your question."
)

// CombinedAnswerSeparator joins the two half-answers when the compositor's
// merge call fails and it falls back to literal concatenation.
const CombinedAnswerSeparator = "\n\n---\n\nAdditional Research:\n"

// Database slice citation metadata. Names are the logical store files the
// retriever reports as consulted.
const (
	SourceIDProducts = "db-products"
	SourceIDTrends   = "db-trends"
	SourceIDFabrics  = "db-fabrics"

	StoreNameProducts = "products.json"
	StoreNameMarket   = "market_data.json"

	SnippetProducts = "Product catalog data including SKUs, categories, pricing, and sales performance metrics."
	SnippetTrends   = "Market trends and analysis data including growth rates and competitive intelligence."
	SnippetFabrics  = "Competitor fabric innovations and material analysis."

	// Fallback snippets when no keyword group matched and the retriever
	// returns a capped prefix of whatever data exists.
	SnippetProductsShort = "Product catalog data."
	SnippetTrendsShort   = "Market trends data."
)
