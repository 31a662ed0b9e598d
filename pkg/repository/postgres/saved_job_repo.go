package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharunkumar-sh/career-lens/pkg/savedjob"
)

// SavedJobRepository stores bookmarked job listings per owner.
type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) (*SavedJobRepository, error) {
	r := &SavedJobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SavedJobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS saved_jobs (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	job_id TEXT NOT NULL,
	job JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (owner_id, job_id)
);
CREATE INDEX IF NOT EXISTS idx_saved_jobs_owner ON saved_jobs(owner_id, created_at DESC);
`)
	return err
}

func (r *SavedJobRepository) Upsert(ctx context.Context, s savedjob.SavedJob) (savedjob.SavedJob, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	jobJSON, err := json.Marshal(s.Job)
	if err != nil {
		return savedjob.SavedJob{}, fmt.Errorf("encode job: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO saved_jobs (id, owner_id, job_id, job, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (owner_id, job_id) DO UPDATE SET job = EXCLUDED.job
RETURNING id, owner_id, job_id, job, created_at
`, s.ID, s.OwnerID, s.JobID, jobJSON, s.CreatedAt)
	return scanSavedJob(row)
}

func (r *SavedJobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]savedjob.SavedJob, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, job_id, job, created_at
FROM saved_jobs WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []savedjob.SavedJob{}
	for rows.Next() {
		s, err := scanSavedJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *SavedJobRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}

func scanSavedJob(row pgx.Row) (savedjob.SavedJob, error) {
	var s savedjob.SavedJob
	var jobJSON []byte
	var created time.Time
	if err := row.Scan(&s.ID, &s.OwnerID, &s.JobID, &jobJSON, &created); err != nil {
		return savedjob.SavedJob{}, err
	}
	if err := json.Unmarshal(jobJSON, &s.Job); err != nil {
		return savedjob.SavedJob{}, fmt.Errorf("decode job: %w", err)
	}
	s.CreatedAt = created.UTC()
	return s, nil
}
