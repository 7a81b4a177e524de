package analyses

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrMalformedResponse means no decodable JSON object could be found.
	ErrMalformedResponse = errors.New("model response is not valid JSON")
	// ErrIncompleteSchema means the JSON decoded but required keys are absent.
	ErrIncompleteSchema = errors.New("model response missing required fields")
)

// stripCodeFences removes a single markdown fence wrapper, with or without a
// language tag. Models wrap JSON in ```json fences no matter how firmly the
// prompt asks them not to.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		first := strings.TrimSpace(trimmed[:idx])
		// drop a language tag like "json" on the opening fence line
		if first == "" || !strings.ContainsAny(first, "{}[]") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// extractJSONObject returns the first balanced top-level JSON object in raw.
// Brace counting is string-aware so braces inside string values do not
// unbalance the scan.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
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
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// ParseAnalysis turns a raw model completion into an AnalysisResult. The
// completion may carry commentary and markdown fences around the JSON; the
// parser tolerates all of that but insists on the two required keys.
func ParseAnalysis(raw string) (AnalysisResult, error) {
	var result AnalysisResult

	cleaned := stripCodeFences(raw)
	payload, ok := extractJSONObject(cleaned)
	if !ok {
		return result, ErrMalformedResponse
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return result, ErrMalformedResponse
	}
	if _, ok := fields["overall_score"]; !ok {
		return result, ErrIncompleteSchema
	}
	if _, ok := fields["category_scores"]; !ok {
		return result, ErrIncompleteSchema
	}

	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return result, ErrMalformedResponse
	}
	result.Normalize()
	return result, nil
}
