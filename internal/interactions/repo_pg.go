package interactions

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

func (r *PGRepo) Save(ctx context.Context, interaction Interaction) error {
	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now().UTC()
	}
	const query = `
INSERT INTO ai_interactions (id, user_id, kind, input, output, model, created_at)
VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		interaction.ID,
		interaction.UserID,
		interaction.Kind,
		[]byte(interaction.Input),
		[]byte(interaction.Output),
		interaction.Model,
		interaction.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUserAndKind(ctx context.Context, userID, kind string, limit int) ([]Interaction, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, user_id, kind, input, output, model, created_at
FROM ai_interactions
WHERE user_id = $1 AND kind = $2
ORDER BY created_at DESC
LIMIT $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var it Interaction
		var input, output []byte
		if err := rows.Scan(&it.ID, &it.UserID, &it.Kind, &input, &output, &it.Model, &it.CreatedAt); err != nil {
			return nil, err
		}
		it.Input = input
		it.Output = output
		out = append(out, it)
	}
	return out, rows.Err()
}
