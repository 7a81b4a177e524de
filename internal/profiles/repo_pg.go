package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, career_goal, current_year, college, skills, interests, created_at, updated_at
FROM profiles
WHERE user_id = $1`
	var p Profile
	var careerGoal, currentYear, college sql.NullString
	var skills, interests []byte
	row := r.DB.QueryRowContext(ctx, query, userID)
	err := row.Scan(&p.UserID, &careerGoal, &currentYear, &college, &skills, &interests, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	p.CareerGoal = careerGoal.String
	p.CurrentYear = currentYear.String
	p.College = college.String
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return Profile{}, err
	}
	if err := json.Unmarshal(interests, &p.Interests); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	profile.Normalize()
	now := time.Now().UTC()
	profile.UpdatedAt = now

	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return Profile{}, err
	}
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return Profile{}, err
	}

	const query = `
INSERT INTO profiles (user_id, career_goal, current_year, college, skills, interests, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7, $7)
ON CONFLICT (user_id) DO UPDATE SET
    career_goal = EXCLUDED.career_goal,
    current_year = EXCLUDED.current_year,
    college = EXCLUDED.college,
    skills = EXCLUDED.skills,
    interests = EXCLUDED.interests,
    updated_at = EXCLUDED.updated_at
RETURNING created_at`
	row := r.DB.QueryRowContext(ctx, query,
		profile.UserID,
		profile.CareerGoal,
		profile.CurrentYear,
		profile.College,
		skills,
		interests,
		now,
	)
	if err := row.Scan(&profile.CreatedAt); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
