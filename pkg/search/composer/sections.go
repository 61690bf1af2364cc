package composer

import (
	"regexp"
	"strings"

	"zeus-ai-be/pkg/search"
)

// markerPattern matches the in-band attribution markers. The protocol asks
// the model for literal [DB] / [Online], but models drift, so the parser is
// forgiving: case variants plus the [DATABASE] and [External] synonyms.
var markerPattern = regexp.MustCompile(`(?i)\[(db|database|online|external)\]`)

// SplitSections parses marker-tagged text into attributed sections. Text
// before the first marker is tagged combined. Section texts are kept
// verbatim, so concatenating them in order reproduces the input with the
// markers removed.
func SplitSections(raw string, dbIDs, onlineIDs []string) []search.AnswerSection {
	matches := markerPattern.FindAllStringSubmatchIndex(raw, -1)

	sections := []search.AnswerSection{}
	current := search.AnswerSection{SourceType: search.SourceCombined, SourceIDs: []string{}}
	pos := 0

	flush := func() {
		if current.Text != "" {
			sections = append(sections, current)
		}
	}

	for _, m := range matches {
		current.Text += raw[pos:m[0]]
		flush()

		marker := strings.ToLower(raw[m[2]:m[3]])
		if marker == "db" || marker == "database" {
			current = search.AnswerSection{SourceType: search.SourceDatabase, SourceIDs: dbIDs}
		} else {
			current = search.AnswerSection{SourceType: search.SourceOnline, SourceIDs: onlineIDs}
		}
		pos = m[1]
	}

	current.Text += raw[pos:]
	flush()

	return sections
}
