package savedjob

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dharunkumar-sh/career-lens/pkg/jobs"
)

type UseCase interface {
	Save(ctx context.Context, ownerID uuid.UUID, job jobs.Job) (SavedJob, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]SavedJob, error)
	Remove(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Save(ctx context.Context, ownerID uuid.UUID, job jobs.Job) (SavedJob, error) {
	job.ID = strings.TrimSpace(job.ID)
	job.Title = strings.TrimSpace(job.Title)
	if job.ID == "" || job.Title == "" {
		return SavedJob{}, ErrInvalid
	}
	return s.repo.Upsert(ctx, SavedJob{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		JobID:     job.ID,
		Job:       job,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]SavedJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []SavedJob{}
	}
	return items, nil
}

func (s *service) Remove(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
