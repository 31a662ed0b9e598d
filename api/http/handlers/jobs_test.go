package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharunkumar-sh/career-lens/pkg/jobs"
	"github.com/dharunkumar-sh/career-lens/pkg/savedjob"
)

type savedRepo struct {
	rows map[uuid.UUID]savedjob.SavedJob
}

func (r *savedRepo) Upsert(_ context.Context, s savedjob.SavedJob) (savedjob.SavedJob, error) {
	for id, row := range r.rows {
		if row.OwnerID == s.OwnerID && row.JobID == s.JobID {
			s.ID = id
		}
	}
	r.rows[s.ID] = s
	return s, nil
}

func (r *savedRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]savedjob.SavedJob, error) {
	var out []savedjob.SavedJob
	for _, row := range r.rows {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *savedRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	row, ok := r.rows[id]
	if !ok || row.OwnerID != ownerID {
		return savedjob.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func newJobsApp(userID string) (*fiber.App, *savedRepo) {
	repo := &savedRepo{rows: map[uuid.UUID]savedjob.SavedJob{}}
	h := NewJobsHandler(jobs.NewService(nil, nil), savedjob.NewService(repo))
	app := fiber.New()
	app.Use(withUser(userID))
	app.Get("/jobs", h.Search)
	app.Post("/jobs/suggest", h.Suggest)
	app.Get("/jobs/saved", h.ListSaved)
	app.Post("/jobs/saved", h.Save)
	app.Delete("/jobs/saved/:id", h.RemoveSaved)
	return app, repo
}

func TestJobsHandler_SearchDemoFallback(t *testing.T) {
	app, _ := newJobsApp("")

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/jobs?query=golang&location=Berlin&remote=true", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isDemo"])
	assert.NotEmpty(t, body["message"])

	list, ok := body["jobs"].([]any)
	require.True(t, ok)
	assert.Len(t, list, len(jobs.DemoJobs()))
}

func TestJobsHandler_Autocomplete(t *testing.T) {
	app, _ := newJobsApp("")

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/jobs?autocomplete=job&query=data", nil))
	require.Equal(t, http.StatusOK, status)
	suggestions, ok := body["suggestions"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Contains(t, strings.ToLower(s.(string)), "data")
	}

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/jobs?autocomplete=location&location=zzzz", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["suggestions"])
}

func TestJobsHandler_Suggest(t *testing.T) {
	app, _ := newJobsApp("")

	status, body := do(t, app, jsonRequest(http.MethodPost, "/jobs/suggest", `{"skills":["React","TypeScript"]}`))
	require.Equal(t, http.StatusOK, status)
	list, ok := body["jobs"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, list)

	prev := 101.0
	for _, item := range list {
		score := item.(map[string]any)["matchScore"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}

	status, _ = do(t, app, jsonRequest(http.MethodPost, "/jobs/suggest", `{"skills":`))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestJobsHandler_SavedLifecycle(t *testing.T) {
	owner := uuid.New()
	app, repo := newJobsApp(owner.String())

	status, body := do(t, app, jsonRequest(http.MethodPost, "/jobs/saved", `{"id":"mock-1","title":"Senior Frontend Developer","company":"TechCorp Inc."}`))
	require.Equal(t, http.StatusCreated, status, body)
	require.Len(t, repo.rows, 1)

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/jobs/saved", nil))
	require.Equal(t, http.StatusOK, status)
	saved, ok := body["savedJobs"].([]any)
	require.True(t, ok)
	require.Len(t, saved, 1)
	id := saved[0].(map[string]any)["id"].(string)

	status, _ = do(t, app, httptest.NewRequest(http.MethodDelete, "/jobs/saved/"+id, nil))
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, app, httptest.NewRequest(http.MethodDelete, "/jobs/saved/"+id, nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "saved job not found", body["error"])

	status, _ = do(t, app, jsonRequest(http.MethodPost, "/jobs/saved", `{"id":"mock-2"}`))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestJobsHandler_SavedRequiresUser(t *testing.T) {
	app, _ := newJobsApp("")
	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/jobs/saved", nil))
	assert.Equal(t, http.StatusUnauthorized, status)
}
