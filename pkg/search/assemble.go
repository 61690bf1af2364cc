package search

// Assemble shapes the pipeline outputs into the stable UI contract. This is
// the one place the UI-facing invariants are enforced: source lists are
// always non-nil arrays, and AnswerSections is never empty: when the
// compositor produced no sections, the whole answer becomes a single
// combined section. Upstream components are not trusted to guarantee this.
func Assemble(db *DatabaseResult, online *OnlineResult, comp *Composition) *SearchResponse {
	dbSources := []SourceCitation{}
	if db != nil && db.Sources != nil {
		dbSources = db.Sources
	}
	onlineSources := []SourceCitation{}
	if online != nil && online.Sources != nil {
		onlineSources = online.Sources
	}

	sections := comp.Sections
	if len(sections) == 0 {
		sections = []AnswerSection{
			{Text: comp.CombinedAnswer, SourceType: SourceCombined, SourceIDs: []string{}},
		}
	}

	return &SearchResponse{
		Answer: comp.CombinedAnswer,
		Sources: SourceBuckets{
			Database: dbSources,
			Online:   onlineSources,
		},
		AnswerSections: sections,
	}
}
