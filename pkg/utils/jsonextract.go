package utils

import "strings"

// ExtractJSONObject finds the first balanced {...} block in free text and
// returns it. Models routinely wrap JSON in prose or markdown code fences,
// so both the query analyzer and the action plan generator parse their
// responses through this function. Brace depth is tracked through string
// literals and escapes; a greedy first-to-last-brace match would break on
// nested objects followed by trailing prose.
//
// Returns "" and false when no balanced object exists. Callers must still
// json.Unmarshal the result: a lexically balanced block is not necessarily
// valid JSON.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}

	return "", false
}
