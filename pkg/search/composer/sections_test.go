package composer

import (
	"reflect"
	"strings"
	"testing"

	"zeus-ai-be/pkg/search"
)

var (
	testDBIDs     = []string{"db-products", "db-trends"}
	testOnlineIDs = []string{"online-1", "online-2"}
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTypes []search.SourceType
		wantTexts []string
	}{
		{
			name:      "alternating markers",
			raw:       "[DB] Sales rose 23%. [Online] Industry reports confirm the trend.",
			wantTypes: []search.SourceType{search.SourceDatabase, search.SourceOnline},
			wantTexts: []string{" Sales rose 23%. ", " Industry reports confirm the trend."},
		},
		{
			name:      "text before first marker is combined",
			raw:       "Here is what I found. [DB] Internal data shows growth.",
			wantTypes: []search.SourceType{search.SourceCombined, search.SourceDatabase},
			wantTexts: []string{"Here is what I found. ", " Internal data shows growth."},
		},
		{
			name:      "no markers at all",
			raw:       "Just a plain answer with no attribution.",
			wantTypes: []search.SourceType{search.SourceCombined},
			wantTexts: []string{"Just a plain answer with no attribution."},
		},
		{
			name:      "case variants",
			raw:       "[db] lower. [ONLINE] upper. [Db] mixed.",
			wantTypes: []search.SourceType{search.SourceDatabase, search.SourceOnline, search.SourceDatabase},
			wantTexts: []string{" lower. ", " upper. ", " mixed."},
		},
		{
			name:      "database and external synonyms",
			raw:       "[DATABASE] from the catalog. [External] from the web.",
			wantTypes: []search.SourceType{search.SourceDatabase, search.SourceOnline},
			wantTexts: []string{" from the catalog. ", " from the web."},
		},
		{
			name:      "adjacent markers drop the empty section",
			raw:       "[DB][Online] only the online part has text.",
			wantTypes: []search.SourceType{search.SourceOnline},
			wantTexts: []string{" only the online part has text."},
		},
		{
			name:      "repeated markers of the same type",
			raw:       "[DB] first fact. [DB] second fact.",
			wantTypes: []search.SourceType{search.SourceDatabase, search.SourceDatabase},
			wantTexts: []string{" first fact. ", " second fact."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := SplitSections(tt.raw, testDBIDs, testOnlineIDs)

			if len(sections) != len(tt.wantTypes) {
				t.Fatalf("got %d sections, want %d: %+v", len(sections), len(tt.wantTypes), sections)
			}
			for i := range sections {
				if sections[i].SourceType != tt.wantTypes[i] {
					t.Errorf("sections[%d].SourceType = %q, want %q", i, sections[i].SourceType, tt.wantTypes[i])
				}
				if sections[i].Text != tt.wantTexts[i] {
					t.Errorf("sections[%d].Text = %q, want %q", i, sections[i].Text, tt.wantTexts[i])
				}
			}
		})
	}
}

func TestSplitSectionsAssignsSourceIDs(t *testing.T) {
	sections := SplitSections("intro [DB] db part [Online] online part", testDBIDs, testOnlineIDs)

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if !reflect.DeepEqual(sections[0].SourceIDs, []string{}) {
		t.Errorf("combined SourceIDs = %v, want empty", sections[0].SourceIDs)
	}
	if !reflect.DeepEqual(sections[1].SourceIDs, testDBIDs) {
		t.Errorf("database SourceIDs = %v, want %v", sections[1].SourceIDs, testDBIDs)
	}
	if !reflect.DeepEqual(sections[2].SourceIDs, testOnlineIDs) {
		t.Errorf("online SourceIDs = %v, want %v", sections[2].SourceIDs, testOnlineIDs)
	}
}

func TestSplitSectionsConcatenationReproducesInput(t *testing.T) {
	inputs := []string{
		"[DB] Sales rose. [Online] Reports agree. [DB] Margins held.",
		"Preamble text [DATABASE] catalog facts [External] web facts",
		"no markers here at all",
	}

	for _, raw := range inputs {
		sections := SplitSections(raw, testDBIDs, testOnlineIDs)

		var joined strings.Builder
		for _, s := range sections {
			joined.WriteString(s.Text)
		}
		want := markerPattern.ReplaceAllString(raw, "")
		if joined.String() != want {
			t.Errorf("concatenated sections = %q, want %q", joined.String(), want)
		}
	}
}
