package interactions

import (
	"encoding/json"
	"time"
)

// Interaction kinds recorded by the AI endpoints.
const (
	KindLearningSuggestions = "learning_suggestions"
	KindCareerSuggestions   = "career_suggestions"
)

// Interaction is one recorded exchange with the model on behalf of a user.
// Input and Output are stored as raw JSON so each endpoint keeps its own shape.
type Interaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	Model     string          `json:"model"`
	CreatedAt time.Time       `json:"created_at"`
}
