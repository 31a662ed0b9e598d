package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dharunkumar-sh/career-lens/pkg/health"
)

var _ health.Checker = (*Probe)(nil)

func TestProbe_AppliesTimeout(t *testing.T) {
	p := NewProbe("slow", 20*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.Equal(t, "slow", p.Name())
	assert.ErrorIs(t, p.Check(context.Background()), context.DeadlineExceeded)
}

func TestProbe_PassesResult(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, NewProbe("x", 0, func(context.Context) error { return boom }).Check(context.Background()), boom)
	assert.NoError(t, NewProbe("x", 0, func(context.Context) error { return nil }).Check(context.Background()))
}
