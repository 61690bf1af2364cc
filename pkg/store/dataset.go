package store

// Dataset is the in-memory private data catalog a request is answered from.
// Slices are loosely typed: the client uploads raw JSON records and the
// retriever only ever keyword-matches and pretty-prints them. The dataset is
// read-only from the pipeline's perspective within a request.
type Dataset struct {
	Products           []map[string]interface{} `json:"products,omitempty"`
	MarketTrends       []map[string]interface{} `json:"marketTrends,omitempty"`
	CompetitorAnalysis []map[string]interface{} `json:"competitorAnalysis,omitempty"`
}

// IsEmpty reports whether the dataset holds no records at all.
func (d *Dataset) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Products) == 0 && len(d.MarketTrends) == 0 && len(d.CompetitorAnalysis) == 0
}
