package analysis

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	records map[uuid.UUID]Record
	limit   int
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[uuid.UUID]Record{}}
}

func (m *memRepo) Create(_ context.Context, rec Record) (Record, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Add(time.Duration(len(m.records)) * time.Second)
	}
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Record, error) {
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != ownerID {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) LatestForOwner(ctx context.Context, ownerID uuid.UUID) (Record, error) {
	recs, _ := m.ListByOwner(ctx, ownerID, 1, 0)
	if len(recs) == 0 {
		return Record{}, ErrNotFound
	}
	return recs[0], nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error) {
	m.limit = limit
	var out []Record
	for _, rec := range m.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func TestService_SaveAssignsIDAndScore(t *testing.T) {
	svc := NewService(newMemRepo())
	owner := uuid.New()

	rec, err := svc.Save(context.Background(), Record{OwnerID: owner, Filename: "cv.pdf", Result: Analyze(sampleResume, 1)})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, rec.Result.Score, rec.Score)
}

func TestService_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())
	alice, bob := uuid.New(), uuid.New()

	rec, err := svc.Save(ctx, Record{OwnerID: alice, Filename: "a.pdf"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, bob, rec.ID), ErrNotFound)

	got, err := svc.Get(ctx, alice, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.Filename)
}

func TestService_LatestAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())
	owner := uuid.New()

	_, err := svc.Save(ctx, Record{OwnerID: owner, Filename: "first.pdf"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, Record{OwnerID: owner, Filename: "second.pdf"})
	require.NoError(t, err)

	latest, err := svc.Latest(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "second.pdf", latest.Filename)

	list, err := svc.List(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_ListNormalizesPaging(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	list, err := svc.List(context.Background(), uuid.New(), 0, -5)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Equal(t, 20, repo.limit)
}

func TestService_DeleteRemovesRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())
	owner := uuid.New()

	rec, err := svc.Save(ctx, Record{OwnerID: owner})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, owner, rec.ID))

	_, err = svc.Latest(ctx, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
