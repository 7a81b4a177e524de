package profiles

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// Profile holds the career context used to personalize suggestions.
type Profile struct {
	UserID      string    `json:"userId"`
	CareerGoal  string    `json:"careerGoal"`
	CurrentYear string    `json:"currentYear"`
	College     string    `json:"college"`
	Skills      []string  `json:"skills"`
	Interests   []string  `json:"interests"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize trims list entries and drops empties so prompts built from the
// profile stay clean.
func (p *Profile) Normalize() {
	p.CareerGoal = strings.TrimSpace(p.CareerGoal)
	p.CurrentYear = strings.TrimSpace(p.CurrentYear)
	p.College = strings.TrimSpace(p.College)
	p.Skills = cleanList(p.Skills)
	p.Interests = cleanList(p.Interests)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
