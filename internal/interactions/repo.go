package interactions

import "context"

// Repo stores recorded model interactions.
type Repo interface {
	Save(ctx context.Context, interaction Interaction) error
	ListByUserAndKind(ctx context.Context, userID, kind string, limit int) ([]Interaction, error)
}
