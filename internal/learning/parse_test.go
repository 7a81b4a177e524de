package learning

import (
	"errors"
	"testing"
)

const validArray = `[
	{"title": "Go Fundamentals", "description": "Learn Go", "category": "Programming", "difficulty": "Beginner", "duration": "4 weeks", "skills": ["Go"], "match": 90, "rating": 4.7, "enrolled": 5000, "modules": ["Basics", "Concurrency"]},
	{"title": "SQL Mastery", "description": "Learn SQL", "category": "Databases", "difficulty": "Intermediate", "duration": "3 weeks", "skills": ["SQL"], "match": 80}
]`

func TestParsePathsPlainArray(t *testing.T) {
	paths, err := ParsePaths(validArray)
	if err != nil {
		t.Fatalf("ParsePaths() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len = %d, want 2", len(paths))
	}
	if paths[0].Title != "Go Fundamentals" || paths[0].Match != 90 {
		t.Fatalf("unexpected first path: %+v", paths[0])
	}
}

func TestParsePathsFencedWithProse(t *testing.T) {
	raw := "Here are my suggestions:\n```json\n" + validArray + "\n```\nGood luck!"
	paths, err := ParsePaths(raw)
	if err != nil {
		t.Fatalf("ParsePaths() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len = %d, want 2", len(paths))
	}
}

func TestParsePathsBracketsInsideStrings(t *testing.T) {
	raw := `[{"title": "Arrays [deep dive]", "description": "covers a[i] access", "skills": []}]`
	paths, err := ParsePaths(raw)
	if err != nil {
		t.Fatalf("ParsePaths() error = %v", err)
	}
	if paths[0].Title != "Arrays [deep dive]" {
		t.Fatalf("title = %q", paths[0].Title)
	}
}

func TestParsePathsRejectsNonArray(t *testing.T) {
	for name, raw := range map[string]string{
		"prose":         "I suggest learning Go.",
		"empty array":   `[]`,
		"truncated":     `[{"title": "Go"`,
		"missing title": `[{"description": "no title here"}]`,
	} {
		if _, err := ParsePaths(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("%s: error = %v, want ErrMalformedResponse", name, err)
		}
	}
}

func TestParsePathsDefaultsCollections(t *testing.T) {
	paths, err := ParsePaths(`[{"title": "Go Basics"}]`)
	if err != nil {
		t.Fatalf("ParsePaths() error = %v", err)
	}
	if paths[0].Skills == nil || paths[0].Modules == nil {
		t.Fatal("collections must default to empty, not nil")
	}
}
