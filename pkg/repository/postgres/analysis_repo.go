package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
)

// AnalysisRepository stores analysis results as JSONB keyed by owner.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	resume_id UUID REFERENCES resumes(id) ON DELETE SET NULL,
	filename TEXT NOT NULL DEFAULT '',
	score INTEGER NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_owner_created ON analyses(owner_id, created_at DESC);
`)
	return err
}

const analysisColumns = `id, owner_id, resume_id, filename, score, result, created_at`

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.Record) (analysis.Record, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("encode result: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (`+analysisColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.OwnerID, a.ResumeID, a.Filename, a.Score, resultJSON, a.CreatedAt)
	if err != nil {
		return analysis.Record{}, err
	}
	return a, nil
}

func (r *AnalysisRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (analysis.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+analysisColumns+`
FROM analyses WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanAnalysis(row)
}

func (r *AnalysisRepository) LatestForOwner(ctx context.Context, ownerID uuid.UUID) (analysis.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+analysisColumns+`
FROM analyses WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT 1
`, ownerID)
	return scanAnalysis(row)
}

func (r *AnalysisRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]analysis.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+`
FROM analyses WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []analysis.Record{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *AnalysisRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

func scanAnalysis(row pgx.Row) (analysis.Record, error) {
	var a analysis.Record
	var resultBytes []byte
	var created time.Time
	if err := row.Scan(&a.ID, &a.OwnerID, &a.ResumeID, &a.Filename, &a.Score, &resultBytes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Record{}, analysis.ErrNotFound
		}
		return analysis.Record{}, err
	}
	if err := json.Unmarshal(resultBytes, &a.Result); err != nil {
		return analysis.Record{}, fmt.Errorf("decode result: %w", err)
	}
	a.CreatedAt = created.UTC()
	return a, nil
}
