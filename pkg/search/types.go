// Package search defines the data contract shared by the dual-source
// answer pipeline: query analysis, source provenance, attributed answer
// sections, and the response shape consumed by the UI.
package search

// SourceType identifies which knowledge source an answer fragment came from.
type SourceType string

const (
	SourceDatabase SourceType = "database"
	SourceOnline   SourceType = "online"
	SourceCombined SourceType = "combined"
)

// QueryAnalysis is the routing decision produced by the query analyzer.
type QueryAnalysis struct {
	DatabaseNeeds    []string `json:"databaseNeeds"`
	OnlineNeeds      []string `json:"onlineNeeds"`
	SanitizedQuery   string   `json:"sanitizedQuery"`
	RequiresDatabase bool     `json:"requiresDatabase"`
	RequiresOnline   bool     `json:"requiresOnline"`
}

// SourceCitation is a provenance record. Database citations carry Name
// (the logical store file consulted); online citations carry Title and URL.
type SourceCitation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Title     string  `json:"title,omitempty"`
	URL       string  `json:"url,omitempty"`
	Type      string  `json:"type,omitempty"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
	Image     string  `json:"image,omitempty"`
}

// AnswerSection is one attributed fragment of the final answer. Concatenating
// all sections in order reproduces the composed answer with the source
// markers stripped.
type AnswerSection struct {
	Text       string     `json:"text"`
	SourceType SourceType `json:"sourceType"`
	SourceIDs  []string   `json:"sourceIds"`
}

// SourceBuckets groups citations by origin. Both slices are always non-nil
// in an assembled response.
type SourceBuckets struct {
	Database []SourceCitation `json:"database"`
	Online   []SourceCitation `json:"online"`
}

// SearchResponse is the stable contract returned by the whole pipeline.
// AnswerSections is never empty: when no structured sectioning could be
// derived it degrades to a single combined section wrapping Answer.
type SearchResponse struct {
	Answer         string          `json:"answer"`
	Sources        SourceBuckets   `json:"sources"`
	AnswerSections []AnswerSection `json:"answerSections"`
}

// DatabaseResult is the output of the private-data path: retrieval plus
// (optionally) a generated answer. An empty Answer with non-empty Sources
// means retrieval succeeded but generation did not.
type DatabaseResult struct {
	Sources []SourceCitation
	Context string
	Answer  string
}

// OnlineResult is the output of the simulated web-research path.
type OnlineResult struct {
	Sources []SourceCitation
	Answer  string
}

// Composition is the compositor's output: the merged answer text and its
// attributed sections.
type Composition struct {
	CombinedAnswer string
	Sections       []AnswerSection
}

// SourceIDs extracts the id of every citation in order.
func SourceIDs(sources []SourceCitation) []string {
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	return ids
}
