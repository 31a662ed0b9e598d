package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReady_AllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis"})
	require.NoError(t, svc.Ready(context.Background()))
}

func TestReady_ReportsFailingDependency(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: down})

	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "redis")
}

func TestReady_SkipsNilCheckers(t *testing.T) {
	svc := NewService(nil, stubChecker{name: "postgres"})
	assert.NoError(t, svc.Ready(context.Background()))
}
