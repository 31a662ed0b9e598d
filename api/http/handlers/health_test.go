package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type readyFunc func(ctx context.Context) error

func (f readyFunc) Ready(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	var down error
	h := NewHealthHandler(readyFunc(func(context.Context) error { return down }))
	app := fiber.New()
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["uptime"])

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	down = errors.New("postgres: connection refused")
	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "postgres: connection refused", body["details"])
}
