package analysis

import (
	"context"

	"github.com/google/uuid"
)

// UseCase exposes a user's stored analyses.
type UseCase interface {
	Save(ctx context.Context, rec Record) (Record, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	Latest(ctx context.Context, ownerID uuid.UUID) (Record, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.Score = rec.Result.Score
	return s.repo.Create(ctx, rec)
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Record, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) Latest(ctx context.Context, ownerID uuid.UUID) (Record, error) {
	return s.repo.LatestForOwner(ctx, ownerID)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	recs, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
