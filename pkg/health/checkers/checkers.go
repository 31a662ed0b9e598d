package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const defaultTimeout = time.Second

// Probe is a named health check bounded by a timeout.
type Probe struct {
	name    string
	timeout time.Duration
	check   func(ctx context.Context) error
}

func NewProbe(name string, timeout time.Duration, check func(ctx context.Context) error) *Probe {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Probe{name: name, timeout: timeout, check: check}
}

func (p *Probe) Name() string { return p.name }

func (p *Probe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.check(ctx)
}

var errSchemaMissing = errors.New("schema not initialized")

// NewPostgresChecker pings the pool and verifies the resumes table exists.
func NewPostgresChecker(pool *pgxpool.Pool) *Probe {
	return NewProbe("postgres", defaultTimeout, func(ctx context.Context) error {
		var ok bool
		if err := pool.QueryRow(ctx, `SELECT to_regclass('public.resumes') IS NOT NULL`).Scan(&ok); err != nil {
			return err
		}
		if !ok {
			return errSchemaMissing
		}
		return nil
	})
}

func NewRedisChecker(client *redis.Client) *Probe {
	return NewProbe("redis", defaultTimeout, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
