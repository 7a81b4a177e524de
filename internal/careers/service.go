package careers

import (
	"context"
	"encoding/json"
	"errors"

	"careerhub-backend/internal/interactions"
	"careerhub-backend/internal/profiles"
	"careerhub-backend/internal/shared/telemetry"
)

// careerPaths is the static catalog served by the suggestions endpoint.
var careerPaths = []CareerPath{
	{
		Title:          "Full-Stack Developer",
		Description:    "Build end-to-end web applications",
		Match:          92,
		Skills:         []string{"React", "Node.js", "TypeScript"},
		TimeToComplete: "8-12 months",
		AverageSalary:  "₹8-15 LPA",
		DemandLevel:    "High",
		Roadmap:        []string{"Learn React", "Master Node.js", "Build projects"},
	},
}

// Service serves career path suggestions and records each request.
type Service struct {
	Profiles     profiles.Repo
	Interactions interactions.Repo
}

// Suggest returns career paths for the user. Skills and interests from the
// request body override the stored profile when provided.
func (s *Service) Suggest(ctx context.Context, userID string, overrideSkills, overrideInterests []string) ([]CareerPath, error) {
	skills := overrideSkills
	interests := overrideInterests
	if skills == nil || interests == nil {
		profile, err := s.Profiles.Get(ctx, userID)
		if err != nil && !errors.Is(err, profiles.ErrNotFound) {
			return nil, err
		}
		if skills == nil {
			skills = profile.Skills
		}
		if interests == nil {
			interests = profile.Interests
		}
	}

	paths := make([]CareerPath, len(careerPaths))
	for i, path := range careerPaths {
		path.Skills = append([]string(nil), path.Skills...)
		path.Roadmap = append([]string(nil), path.Roadmap...)
		paths[i] = path
	}

	s.record(ctx, userID, skills, interests, paths)
	return paths, nil
}

// Previous returns prior career suggestion runs for the user.
func (s *Service) Previous(ctx context.Context, userID string) ([]interactions.Interaction, error) {
	if s.Interactions == nil {
		return []interactions.Interaction{}, nil
	}
	prior, err := s.Interactions.ListByUserAndKind(ctx, userID, interactions.KindCareerSuggestions, 20)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		prior = []interactions.Interaction{}
	}
	return prior, nil
}

func (s *Service) record(ctx context.Context, userID string, skills, interests []string, paths []CareerPath) {
	if s.Interactions == nil {
		return
	}
	input, _ := json.Marshal(map[string]any{
		"skills":    skills,
		"interests": interests,
	})
	output, _ := json.Marshal(paths)
	err := s.Interactions.Save(ctx, interactions.Interaction{
		UserID: userID,
		Kind:   interactions.KindCareerSuggestions,
		Input:  input,
		Output: output,
		Model:  "fallback",
	})
	if err != nil {
		telemetry.Warn("careers.record_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
