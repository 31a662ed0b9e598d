package savedjob

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dharunkumar-sh/career-lens/pkg/jobs"
)

// SavedJob is a bookmarked listing. Job is a snapshot taken at save time since
// upstream listings expire.
type SavedJob struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"-"`
	JobID     string    `json:"jobId"`
	Job       jobs.Job  `json:"job"`
	CreatedAt time.Time `json:"savedAt"`
}

var (
	ErrNotFound = errors.New("saved job not found")
	ErrInvalid  = errors.New("job id and title are required")
)

// Repository is the persistence port. Upsert keeps one row per owner and job id.
type Repository interface {
	Upsert(ctx context.Context, s SavedJob) (SavedJob, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]SavedJob, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
