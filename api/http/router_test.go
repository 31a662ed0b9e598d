package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharunkumar-sh/career-lens/api/http/handlers"
	"github.com/dharunkumar-sh/career-lens/pkg/analysis"
	"github.com/dharunkumar-sh/career-lens/pkg/auth"
	"github.com/dharunkumar-sh/career-lens/pkg/coach"
	"github.com/dharunkumar-sh/career-lens/pkg/health"
	"github.com/dharunkumar-sh/career-lens/pkg/jobs"
	"github.com/dharunkumar-sh/career-lens/pkg/resume"
	"github.com/dharunkumar-sh/career-lens/pkg/savedjob"
	"github.com/dharunkumar-sh/career-lens/pkg/security/jwt"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "career-lens"
)

func newTestApp(aiPerMinute int) *fiber.App {
	app := fiber.New()
	Register(app, Handlers{
		Auth:     handlers.NewAuthHandler(auth.NewAuthService(nil, nil)),
		Health:   handlers.NewHealthHandler(health.NewService()),
		Resume:   handlers.NewResumeHandler(resume.NewAnalysisService(nil, nil, nil, nil, 0), coach.NewService(nil, nil, nil), nil, 0),
		Resumes:  handlers.NewResumesHandler(resume.NewService(nil, nil, nil)),
		Analyses: handlers.NewAnalysesHandler(analysis.NewService(nil)),
		Jobs:     handlers.NewJobsHandler(jobs.NewService(nil, nil), savedjob.NewService(nil)),
		Coach:    handlers.NewCoachHandler(coach.NewService(nil, nil, nil), nil),
	}, Guards{
		Required:            jwt.NewAuthMiddleware(testSecret, testIssuer),
		Optional:            jwt.NewOptionalAuthMiddleware(testSecret, testIssuer),
		AIRequestsPerMinute: aiPerMinute,
	})
	return app
}

func status(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestRegister_PublicRoutes(t *testing.T) {
	app := newTestApp(10)

	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)))
	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil)))
	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs?autocomplete=job&query=dev", nil)))
}

func TestRegister_ProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp(10)

	for _, path := range []string{"/api/v1/resumes", "/api/v1/analyses/latest", "/api/v1/jobs/saved", "/api/v1/auth/me"} {
		assert.Equal(t, http.StatusUnauthorized, status(t, app, httptest.NewRequest(http.MethodGet, path, nil)), path)
	}

	token, err := jwt.NewGenerator(testSecret, testIssuer, time.Hour).Generate(context.Background(), auth.User{ID: uuid.New(), Email: "a@b.c"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, status(t, app, req))
}

func TestRegister_AIRoutesAreRateLimited(t *testing.T) {
	app := newTestApp(2)

	call := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-coach", strings.NewReader(`{"type":"poem"}`))
		req.Header.Set("Content-Type", "application/json")
		return status(t, app, req)
	}
	assert.Equal(t, http.StatusInternalServerError, call())
	assert.Equal(t, http.StatusInternalServerError, call())
	assert.Equal(t, http.StatusTooManyRequests, call())
}
