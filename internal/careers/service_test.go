package careers

import (
	"context"
	"encoding/json"
	"testing"

	"careerhub-backend/internal/interactions"
	"careerhub-backend/internal/profiles"
)

func newService() (*Service, *profiles.MemoryRepo, *interactions.MemoryRepo) {
	profileRepo := profiles.NewMemoryRepo()
	interactionRepo := interactions.NewMemoryRepo()
	return &Service{Profiles: profileRepo, Interactions: interactionRepo}, profileRepo, interactionRepo
}

func TestSuggestReturnsCatalog(t *testing.T) {
	svc, _, _ := newService()

	paths, err := svc.Suggest(context.Background(), "user-1", nil, nil)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(paths) != 1 || paths[0].Title != "Full-Stack Developer" {
		t.Fatalf("unexpected paths: %+v", paths)
	}
	if paths[0].Match != 92 || paths[0].DemandLevel != "High" {
		t.Fatalf("unexpected path fields: %+v", paths[0])
	}
}

func TestSuggestRecordsOverrideSkills(t *testing.T) {
	svc, _, interactionRepo := newService()

	_, err := svc.Suggest(context.Background(), "user-1", []string{"Rust"}, []string{"systems"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	prior, err := interactionRepo.ListByUserAndKind(context.Background(), "user-1", interactions.KindCareerSuggestions, 10)
	if err != nil {
		t.Fatalf("ListByUserAndKind: %v", err)
	}
	if len(prior) != 1 {
		t.Fatalf("interactions = %d, want 1", len(prior))
	}

	var input struct {
		Skills    []string `json:"skills"`
		Interests []string `json:"interests"`
	}
	if err := json.Unmarshal(prior[0].Input, &input); err != nil {
		t.Fatalf("decode input: %v", err)
	}
	if len(input.Skills) != 1 || input.Skills[0] != "Rust" {
		t.Fatalf("recorded skills = %v", input.Skills)
	}
}

func TestSuggestFallsBackToProfileSkills(t *testing.T) {
	svc, profileRepo, interactionRepo := newService()
	_, err := profileRepo.Upsert(context.Background(), profiles.Profile{
		UserID: "user-1",
		Skills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if _, err := svc.Suggest(context.Background(), "user-1", nil, nil); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	prior, err := interactionRepo.ListByUserAndKind(context.Background(), "user-1", interactions.KindCareerSuggestions, 10)
	if err != nil {
		t.Fatalf("ListByUserAndKind: %v", err)
	}
	var input struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(prior[0].Input, &input); err != nil {
		t.Fatalf("decode input: %v", err)
	}
	if len(input.Skills) != 1 || input.Skills[0] != "Go" {
		t.Fatalf("recorded skills = %v", input.Skills)
	}
}

func TestSuggestCopyIsolation(t *testing.T) {
	svc, _, _ := newService()

	first, err := svc.Suggest(context.Background(), "user-1", nil, nil)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	first[0].Skills[0] = "mutated"
	first[0].Roadmap[0] = "mutated"

	second, err := svc.Suggest(context.Background(), "user-1", nil, nil)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if second[0].Skills[0] == "mutated" || second[0].Roadmap[0] == "mutated" {
		t.Fatal("catalog shared between calls")
	}
}
