package utils

import (
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			text:   `{"a": 1}`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "object wrapped in prose",
			text:   `Sure, here is the JSON you asked for: {"a": 1} Hope that helps!`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "object in markdown code fence",
			text:   "```json\n{\"requiresOnline\": true}\n```",
			want:   `{"requiresOnline": true}`,
			wantOK: true,
		},
		{
			name:   "nested object followed by trailing prose",
			text:   `{"outer": {"inner": {"deep": 2}}} and some trailing text with } braces`,
			want:   `{"outer": {"inner": {"deep": 2}}}`,
			wantOK: true,
		},
		{
			name:   "braces inside string literals",
			text:   `{"text": "a } tricky { value"}`,
			want:   `{"text": "a } tricky { value"}`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			text:   `{"text": "she said \"}\" loudly"}`,
			want:   `{"text": "she said \"}\" loudly"}`,
			wantOK: true,
		},
		{
			name:   "no JSON at all",
			text:   "I could not produce a structured answer, sorry.",
			want:   "",
			wantOK: false,
		},
		{
			name:   "unbalanced open brace",
			text:   `{"a": 1`,
			want:   "",
			wantOK: false,
		},
		{
			name:   "empty input",
			text:   "",
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
