package learning

import "time"

// LearningPath is one suggested course or track, either generated by the
// model or drawn from the static catalog.
type LearningPath struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Duration      string   `json:"duration"`
	Provider      string   `json:"provider,omitempty"`
	URL           string   `json:"url,omitempty"`
	Skills        []string `json:"skills"`
	Rating        float64  `json:"rating,omitempty"`
	Enrolled      int      `json:"enrolled,omitempty"`
	IsRecommended bool     `json:"isRecommended,omitempty"`
	Match         int      `json:"match"`
	Modules       []string `json:"modules,omitempty"`
}

// Resource is a learning path persisted to a user's library.
type Resource struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	ResourceType       string    `json:"resourceType"`
	URL                string    `json:"url"`
	SkillCategory      string    `json:"skillCategory"`
	DifficultyLevel    string    `json:"difficultyLevel"`
	EstimatedDuration  string    `json:"estimatedDuration"`
	Status             string    `json:"status"`
	ProgressPercentage int       `json:"progressPercentage"`
	CreatedAt          time.Time `json:"createdAt"`
}

// SaveResult reports how many suggested paths were newly persisted.
type SaveResult struct {
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
}
