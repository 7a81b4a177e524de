package learning

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo implements Repo in memory for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resource
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Resource)}
}

func (r *MemoryRepo) ListTitles(ctx context.Context, userID string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	titles := make(map[string]bool)
	for _, res := range r.data[userID] {
		titles[res.Title] = true
	}
	return titles, nil
}

func (r *MemoryRepo) SaveAll(ctx context.Context, resources []Resource) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := 0
	now := time.Now().UTC()
	for _, res := range resources {
		exists := false
		for _, existing := range r.data[res.UserID] {
			if existing.Title == res.Title {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		if res.CreatedAt.IsZero() {
			res.CreatedAt = now
		}
		r.data[res.UserID] = append(r.data[res.UserID], res)
		saved++
	}
	return saved, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Resource(nil), r.data[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
