package learning

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

func (r *PGRepo) ListTitles(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT title FROM learning_resources WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]bool)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles[title] = true
	}
	return titles, rows.Err()
}

func (r *PGRepo) SaveAll(ctx context.Context, resources []Resource) (int, error) {
	if len(resources) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const query = `
INSERT INTO learning_resources (
	id, user_id, title, description, resource_type, url, skill_category,
	difficulty_level, estimated_duration, status, progress_percentage, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id, title) DO NOTHING`

	saved := 0
	now := time.Now().UTC()
	for _, res := range resources {
		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		if res.CreatedAt.IsZero() {
			res.CreatedAt = now
		}
		result, err := tx.ExecContext(ctx, query,
			res.ID,
			res.UserID,
			res.Title,
			res.Description,
			res.ResourceType,
			res.URL,
			res.SkillCategory,
			res.DifficultyLevel,
			res.EstimatedDuration,
			res.Status,
			res.ProgressPercentage,
			res.CreatedAt,
		)
		if err != nil {
			return 0, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected > 0 {
			saved++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return saved, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resource, error) {
	const query = `
SELECT id, user_id, title, description, resource_type, url, skill_category,
	difficulty_level, estimated_duration, status, progress_percentage, created_at
FROM learning_resources
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resource
	for rows.Next() {
		var res Resource
		var description, url, category, duration sql.NullString
		if err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.Title,
			&description,
			&res.ResourceType,
			&url,
			&category,
			&res.DifficultyLevel,
			&duration,
			&res.Status,
			&res.ProgressPercentage,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		res.Description = description.String
		res.URL = url.String
		res.SkillCategory = category.String
		res.EstimatedDuration = duration.String
		out = append(out, res)
	}
	return out, rows.Err()
}
