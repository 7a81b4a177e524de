package learning

import (
	"reflect"
	"testing"
)

func TestFallbackPathsNoSignalReturnsFirstThree(t *testing.T) {
	paths := FallbackPaths(nil, nil, "")
	if len(paths) != 3 {
		t.Fatalf("len = %d, want 3", len(paths))
	}
	if paths[0].Title != "JavaScript Fundamentals" {
		t.Fatalf("first path = %q", paths[0].Title)
	}
}

func TestFallbackPathsScoresSkillOverlap(t *testing.T) {
	paths := FallbackPaths([]string{"React", "JavaScript"}, nil, "")
	if len(paths) == 0 {
		t.Fatal("no paths returned")
	}
	if paths[0].Title != "React Development Mastery" {
		t.Fatalf("top path = %q, want React Development Mastery", paths[0].Title)
	}
	// React + JavaScript + Frontend-adjacent overlap: 2 skills x 20 + base 50
	if paths[0].Match != 90 {
		t.Fatalf("match = %d, want 90", paths[0].Match)
	}
}

func TestFallbackPathsCareerGoalAlignment(t *testing.T) {
	paths := FallbackPaths(nil, nil, "data science")
	if len(paths) == 0 {
		t.Fatal("no paths returned")
	}
	if paths[0].Title != "Python for Data Science" {
		t.Fatalf("top path = %q, want Python for Data Science", paths[0].Title)
	}
	// goal alignment 25 + base 50
	if paths[0].Match != 75 {
		t.Fatalf("match = %d, want 75", paths[0].Match)
	}
}

func TestFallbackPathsCapsScoreAt98(t *testing.T) {
	skills := []string{"HTML", "CSS", "JavaScript", "Node.js", "Database", "Express"}
	paths := FallbackPaths(skills, skills, "web development")
	for _, path := range paths {
		if path.Match > 98 {
			t.Fatalf("match %d exceeds cap for %q", path.Match, path.Title)
		}
	}
}

func TestFallbackPathsReturnsAtMostFour(t *testing.T) {
	paths := FallbackPaths([]string{"JavaScript", "Python", "React", "HTML"}, []string{"Mobile Development", "Data Science"}, "web development")
	if len(paths) > 4 {
		t.Fatalf("len = %d, want at most 4", len(paths))
	}
}

func TestFallbackPathsDeterministic(t *testing.T) {
	first := FallbackPaths([]string{"JavaScript"}, []string{"Data Science"}, "backend")
	second := FallbackPaths([]string{"JavaScript"}, []string{"Data Science"}, "backend")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different suggestions")
	}
}

func TestFallbackPathsCopyIsolation(t *testing.T) {
	first := FallbackPaths(nil, nil, "")
	first[0].Skills[0] = "mutated"

	second := FallbackPaths(nil, nil, "")
	if second[0].Skills[0] == "mutated" {
		t.Fatal("catalog entries shared between calls")
	}
}
