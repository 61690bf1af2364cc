// Package analyzer routes an incoming query between the private database
// path and the public research path. The primary path asks the LLM for a
// structured decision; a deterministic keyword classifier backs it whenever
// the call or the parse fails.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"zeus-ai-be/internal/constant"
	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/search"
	"zeus-ai-be/pkg/utils"
)

var sanitizerPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(constant.SanitizerStopWords, "|") + `)\b`)

// NeedsOnlineResearch is the hard-routing predicate: any trigger keyword in
// the query forces the online path regardless of what the model decided.
// It is the single implementation behind the prompt instructions, the
// post-parse override, and the keyword fallback.
func NeedsOnlineResearch(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range constant.OnlineTriggerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// SanitizeQuery strips company-identifying stop words from the query. Falls
// back to the original query when stripping erases everything; the result
// is never empty for a non-empty input.
func SanitizeQuery(query string) string {
	sanitized := strings.TrimSpace(sanitizerPattern.ReplaceAllString(query, ""))
	sanitized = strings.Join(strings.Fields(sanitized), " ")
	if sanitized == "" {
		return query
	}
	return sanitized
}

// Analyzer produces routing decisions for incoming queries.
type Analyzer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewAnalyzer(llmProvider llm.LLMProvider, logger *log.Logger) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Analyze classifies the query into database vs online needs and produces a
// sanitized query safe to hand to the research step. Never returns an
// error: transport failures and malformed responses both resolve to the
// keyword fallback, and the two failure modes are indistinguishable in the
// result.
func (a *Analyzer) Analyze(ctx context.Context, query string) *search.QueryAnalysis {
	prompt := a.buildPrompt(query)

	response, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0), llm.WithMaxTokens(1000))
	if err != nil {
		a.logger.Printf("[ANALYZER] LLM call failed, using keyword fallback: %v", err)
		return a.fallbackAnalysis(query)
	}

	analysis, err := a.parseAnalysis(response)
	if err != nil {
		a.logger.Printf("[ANALYZER] Parse failed, using keyword fallback: %v", err)
		return a.fallbackAnalysis(query)
	}

	// Deterministic override of the model on the hard triggers, and
	// normalization of the contract edges.
	if NeedsOnlineResearch(query) {
		analysis.RequiresOnline = true
	}
	if strings.TrimSpace(analysis.SanitizedQuery) == "" {
		analysis.SanitizedQuery = query
	}
	if !analysis.RequiresDatabase && !analysis.RequiresOnline {
		analysis.RequiresDatabase = true
	}

	a.logger.Printf("[ANALYZER] Routing: database=%v online=%v sanitized=%q",
		analysis.RequiresDatabase, analysis.RequiresOnline, analysis.SanitizedQuery)

	return analysis
}

func (a *Analyzer) buildPrompt(query string) string {
	var prompt strings.Builder

	prompt.WriteString("Analyze this business query and determine:\n\n")

	prompt.WriteString("1. What information can be answered from a private database containing:\n")
	prompt.WriteString("   - Product catalog (names, prices, sales data, materials)\n")
	prompt.WriteString("   - Market trends and competitor analysis\n")
	prompt.WriteString("   - Internal business metrics\n\n")

	prompt.WriteString("2. What information requires public web search (general industry trends, ")
	prompt.WriteString("competitor public information, market research, fabric innovations, ")
	prompt.WriteString("competitor products, industry news)\n\n")

	prompt.WriteString("IMPORTANT: If the query asks about:\n")
	prompt.WriteString("- \"competitor products\" or \"competitor innovations\" -> REQUIRES ONLINE SEARCH\n")
	prompt.WriteString("- \"fabric innovations\" or \"material innovations\" -> REQUIRES ONLINE SEARCH\n")
	prompt.WriteString("- \"gaining traction\" or \"trending\" -> REQUIRES ONLINE SEARCH\n")
	prompt.WriteString("- \"industry trends\" or \"market trends\" -> REQUIRES ONLINE SEARCH\n")
	prompt.WriteString("- Questions about what competitors are doing -> REQUIRES ONLINE SEARCH\n\n")

	prompt.WriteString("3. Create a SANITIZED search query for web search that:\n")
	prompt.WriteString("   - Removes company names (replace with generic terms like \"athletic wear company\")\n")
	prompt.WriteString("   - Removes proprietary product names\n")
	prompt.WriteString("   - Removes internal metrics and specific data\n")
	prompt.WriteString("   - Keeps only general industry terms and concepts\n\n")

	prompt.WriteString("4. Return a JSON object with this structure:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"databaseNeeds\": [\"list of what needs database\"],\n")
	prompt.WriteString("  \"onlineNeeds\": [\"list of what needs web search\"],\n")
	prompt.WriteString("  \"sanitizedQuery\": \"general search query without private details\",\n")
	prompt.WriteString("  \"requiresDatabase\": true/false,\n")
	prompt.WriteString("  \"requiresOnline\": true/false\n")
	prompt.WriteString("}\n\n")

	prompt.WriteString(fmt.Sprintf("User Query: %q\n\n", query))
	prompt.WriteString("Respond ONLY with valid JSON, no additional text.")

	return prompt.String()
}

func (a *Analyzer) parseAnalysis(response string) (*search.QueryAnalysis, error) {
	jsonContent, ok := utils.ExtractJSONObject(response)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var analysis search.QueryAnalysis
	if err := json.Unmarshal([]byte(jsonContent), &analysis); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	return &analysis, nil
}

// fallbackAnalysis is the deterministic classifier used for both transport
// and parse failures. The two failure modes must produce byte-identical
// results, so there is exactly one implementation.
func (a *Analyzer) fallbackAnalysis(query string) *search.QueryAnalysis {
	needsOnline := NeedsOnlineResearch(query)

	analysis := &search.QueryAnalysis{
		DatabaseNeeds:    []string{},
		OnlineNeeds:      []string{},
		SanitizedQuery:   SanitizeQuery(query),
		RequiresDatabase: !needsOnline,
		RequiresOnline:   needsOnline,
	}
	if needsOnline {
		analysis.OnlineNeeds = append(analysis.OnlineNeeds, query)
	} else {
		analysis.DatabaseNeeds = append(analysis.DatabaseNeeds, query)
	}

	return analysis
}
