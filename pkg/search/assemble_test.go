package search

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAssembleKeepsComposition(t *testing.T) {
	db := &DatabaseResult{Sources: []SourceCitation{{ID: "db-products"}}, Answer: "db answer"}
	online := &OnlineResult{Sources: []SourceCitation{{ID: "online-1"}}, Answer: "online answer"}
	comp := &Composition{
		CombinedAnswer: "combined",
		Sections: []AnswerSection{
			{Text: "combined", SourceType: SourceDatabase, SourceIDs: []string{"db-products"}},
		},
	}

	res := Assemble(db, online, comp)

	if res.Answer != "combined" {
		t.Errorf("Answer = %q", res.Answer)
	}
	if len(res.Sources.Database) != 1 || res.Sources.Database[0].ID != "db-products" {
		t.Errorf("database bucket = %+v", res.Sources.Database)
	}
	if len(res.Sources.Online) != 1 || res.Sources.Online[0].ID != "online-1" {
		t.Errorf("online bucket = %+v", res.Sources.Online)
	}
	if len(res.AnswerSections) != 1 {
		t.Errorf("sections = %+v", res.AnswerSections)
	}
}

func TestAssembleNeverReturnsEmptySections(t *testing.T) {
	comp := &Composition{CombinedAnswer: "just text", Sections: nil}

	res := Assemble(&DatabaseResult{}, &OnlineResult{}, comp)

	if len(res.AnswerSections) != 1 {
		t.Fatalf("got %d sections, want 1", len(res.AnswerSections))
	}
	s := res.AnswerSections[0]
	if s.Text != "just text" || s.SourceType != SourceCombined {
		t.Errorf("section = %+v", s)
	}
	if s.SourceIDs == nil {
		t.Error("SourceIDs is nil")
	}
}

func TestAssembleSourceBucketsSerializeAsArrays(t *testing.T) {
	// Nil inputs must still render as JSON arrays, not null.
	res := Assemble(nil, nil, &Composition{CombinedAnswer: "x"})

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	payload := string(b)
	if strings.Contains(payload, "null") {
		t.Errorf("payload contains null: %s", payload)
	}
	if !strings.Contains(payload, `"database":[]`) || !strings.Contains(payload, `"online":[]`) {
		t.Errorf("buckets not rendered as arrays: %s", payload)
	}
}

func TestSourceIDs(t *testing.T) {
	ids := SourceIDs([]SourceCitation{{ID: "a"}, {ID: "b"}})
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ids = %v", ids)
	}

	if got := SourceIDs(nil); got == nil || len(got) != 0 {
		t.Errorf("SourceIDs(nil) = %v, want empty slice", got)
	}
}
