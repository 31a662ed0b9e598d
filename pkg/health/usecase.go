package health

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	active := make([]Checker, 0, len(checkers))
	for _, ch := range checkers {
		if ch != nil {
			active = append(active, ch)
		}
	}
	return &service{checkers: active}
}

// Ready runs all checks concurrently and reports the first failure.
func (s *service) Ready(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, ch := range s.checkers {
		g.Go(func() error {
			if err := ch.Check(ctx); err != nil {
				return fmt.Errorf("%s: %w", ch.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
