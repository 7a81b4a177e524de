package learning

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedResponse means no decodable JSON array could be found in the
// model completion.
var ErrMalformedResponse = errors.New("model response is not a JSON array")

// ParsePaths extracts the first balanced JSON array from a raw completion
// and decodes it. Fences and surrounding prose are tolerated; an empty array
// or entries without titles are rejected so the caller falls back.
func ParsePaths(raw string) ([]LearningPath, error) {
	cleaned := stripFences(raw)
	payload, ok := extractJSONArray(cleaned)
	if !ok {
		return nil, ErrMalformedResponse
	}

	var paths []LearningPath
	if err := json.Unmarshal([]byte(payload), &paths); err != nil {
		return nil, ErrMalformedResponse
	}
	if len(paths) == 0 {
		return nil, ErrMalformedResponse
	}
	for i := range paths {
		if strings.TrimSpace(paths[i].Title) == "" {
			return nil, ErrMalformedResponse
		}
		if paths[i].Skills == nil {
			paths[i].Skills = []string{}
		}
		if paths[i].Modules == nil {
			paths[i].Modules = []string{}
		}
	}
	return paths, nil
}

func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.ReplaceAll(trimmed, "```json", "")
	trimmed = strings.ReplaceAll(trimmed, "```", "")
	return strings.TrimSpace(trimmed)
}

// extractJSONArray returns the first balanced top-level JSON array in raw,
// skipping brackets that appear inside string values.
func extractJSONArray(raw string) (string, bool) {
	start := strings.IndexByte(raw, '[')
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
		case '[':
			if !inString {
				depth++
			}
		case ']':
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
