package learning

import "context"

// Repo stores a user's saved learning resources.
type Repo interface {
	ListTitles(ctx context.Context, userID string) (map[string]bool, error)
	SaveAll(ctx context.Context, resources []Resource) (int, error)
	ListByUser(ctx context.Context, userID string) ([]Resource, error)
}
