package learning

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"careerhub-backend/internal/interactions"
	"careerhub-backend/internal/llm"
	"careerhub-backend/internal/profiles"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/telemetry"
)

// Defaults used when a user has saved no skills or interests yet.
var (
	defaultSkills    = []string{"Programming", "Web Development"}
	defaultInterests = []string{"Technology", "Software Development"}
)

const (
	defaultCareerGoal  = "General Development"
	defaultCurrentYear = "Final Year"
	defaultCollege     = "College Student"

	incompleteProfileMessage = "Complete your profile to get personalized suggestions"
	fallbackModelName        = "fallback"
)

// Suggestions is the response payload for a suggestion run.
type Suggestions struct {
	LearningPaths []LearningPath     `json:"learningPaths"`
	UserProfile   *SuggestionProfile `json:"userProfile,omitempty"`
	Message       string             `json:"message,omitempty"`
	Saved         SaveResult         `json:"saved"`
}

// SuggestionProfile echoes the profile signal the suggestions were built from.
type SuggestionProfile struct {
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	CareerGoal string   `json:"careerGoal"`
}

// Service generates learning path suggestions from the user's profile,
// persists new ones, and records each run.
type Service struct {
	LLM          llm.Client
	ModelName    string
	Profiles     profiles.Repo
	Resources    Repo
	Interactions interactions.Repo
}

// Suggest runs the suggestion pipeline for a user. Model failures degrade to
// the static catalog scored against the profile; only persistence of the
// response payload itself can fail the call.
func (s *Service) Suggest(ctx context.Context, userID string) (Suggestions, error) {
	skills, interests, careerGoal, currentYear, college, hasProfile := s.profileSignal(ctx, userID)

	var out Suggestions
	usedModel := s.ModelName

	if !hasProfile {
		out.LearningPaths = FallbackPaths(skills, interests, careerGoal)
		out.Message = incompleteProfileMessage
		usedModel = fallbackModelName
		metrics.IncSuggestionFallback()
	} else {
		paths, err := s.generate(ctx, skills, interests, careerGoal, currentYear, college)
		if err != nil {
			telemetry.Warn("learning.fallback", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			paths = FallbackPaths(skills, interests, careerGoal)
			usedModel = fallbackModelName
			metrics.IncSuggestionFallback()
		}
		out.LearningPaths = paths
		out.UserProfile = &SuggestionProfile{
			Skills:     skills,
			Interests:  interests,
			CareerGoal: careerGoal,
		}
	}

	out.Saved = s.persist(ctx, userID, out.LearningPaths)
	s.record(ctx, userID, usedModel, skills, interests, careerGoal, out.LearningPaths)
	return out, nil
}

// Previous returns prior suggestion runs for the user.
func (s *Service) Previous(ctx context.Context, userID string) ([]interactions.Interaction, error) {
	if s.Interactions == nil {
		return []interactions.Interaction{}, nil
	}
	prior, err := s.Interactions.ListByUserAndKind(ctx, userID, interactions.KindLearningSuggestions, 20)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		prior = []interactions.Interaction{}
	}
	return prior, nil
}

// SavedResources returns the user's persisted learning library.
func (s *Service) SavedResources(ctx context.Context, userID string) ([]Resource, error) {
	resources, err := s.Resources.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []Resource{}
	}
	return resources, nil
}

func (s *Service) profileSignal(ctx context.Context, userID string) (skills, interests []string, careerGoal, currentYear, college string, hasProfile bool) {
	careerGoal = defaultCareerGoal
	currentYear = defaultCurrentYear
	college = defaultCollege

	profile, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profiles.ErrNotFound) {
			telemetry.Warn("learning.profile_load_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return defaultSkills, defaultInterests, careerGoal, currentYear, college, false
	}

	if len(profile.Skills) == 0 && len(profile.Interests) == 0 {
		return defaultSkills, defaultInterests, careerGoal, currentYear, college, false
	}

	skills = profile.Skills
	interests = profile.Interests
	if profile.CareerGoal != "" {
		careerGoal = profile.CareerGoal
	}
	if profile.CurrentYear != "" {
		currentYear = profile.CurrentYear
	}
	if profile.College != "" {
		college = profile.College
	}
	return skills, interests, careerGoal, currentYear, college, true
}

func (s *Service) generate(ctx context.Context, skills, interests []string, careerGoal, currentYear, college string) ([]LearningPath, error) {
	prompt := llm.BuildLearningPrompt(skills, interests, careerGoal, currentYear, college)
	completion, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParsePaths(completion)
}

// persist saves new paths to the user's library, skipping titles already
// saved. Persistence failures are logged, never surfaced; suggestions are
// still useful without the bookkeeping.
func (s *Service) persist(ctx context.Context, userID string, paths []LearningPath) SaveResult {
	if s.Resources == nil || len(paths) == 0 {
		return SaveResult{Skipped: len(paths)}
	}

	existing, err := s.Resources.ListTitles(ctx, userID)
	if err != nil {
		telemetry.Warn("learning.list_titles_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		// The insert still dedupes on (user_id, title).
		existing = map[string]bool{}
	}

	resources := make([]Resource, 0, len(paths))
	for _, path := range paths {
		if existing[path.Title] {
			continue
		}
		resources = append(resources, Resource{
			UserID:            userID,
			Title:             path.Title,
			Description:       path.Description,
			ResourceType:      "course",
			URL:               path.URL,
			SkillCategory:     path.Category,
			DifficultyLevel:   normalizeDifficulty(path.Difficulty),
			EstimatedDuration: path.Duration,
			Status:            "saved",
		})
	}
	if len(resources) == 0 {
		return SaveResult{Skipped: len(paths)}
	}

	saved, err := s.Resources.SaveAll(ctx, resources)
	if err != nil {
		telemetry.Warn("learning.save_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return SaveResult{Skipped: len(paths)}
	}
	return SaveResult{Saved: saved, Skipped: len(paths) - saved}
}

func (s *Service) record(ctx context.Context, userID, model string, skills, interests []string, careerGoal string, paths []LearningPath) {
	if s.Interactions == nil {
		return
	}
	input, _ := json.Marshal(map[string]any{
		"skills":     skills,
		"interests":  interests,
		"careerGoal": careerGoal,
	})
	output, _ := json.Marshal(paths)
	err := s.Interactions.Save(ctx, interactions.Interaction{
		UserID: userID,
		Kind:   interactions.KindLearningSuggestions,
		Input:  input,
		Output: output,
		Model:  model,
	})
	if err != nil {
		telemetry.Warn("learning.record_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func normalizeDifficulty(difficulty string) string {
	lowered := strings.ToLower(strings.TrimSpace(difficulty))
	if lowered == "" {
		return "beginner"
	}
	return lowered
}
