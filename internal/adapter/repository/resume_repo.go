package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-api/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResumeRepo stores the single active resume as one JSONB document.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// Load fetches the active resume document. Returns domain.ErrNoActiveResume
// when no row exists.
func (r *ResumeRepo) Load(ctx context.Context) (*domain.Resume, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM resumes WHERE active LIMIT 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveResume
	}
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}

	var res domain.Resume
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &res, nil
}

// Save rewrites the whole document in place.
func (r *ResumeRepo) Save(ctx context.Context, res *domain.Resume) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, active, data, updated_at)
		VALUES ($1, TRUE, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		res.ID, data, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}
