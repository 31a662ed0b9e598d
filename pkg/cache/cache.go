package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultTTL = 15 * time.Minute

// Tiered is a two level byte cache: L1 in process memory, L2 in Redis when
// configured. L1 entries are lost on restart; L2 survives it.
type Tiered struct {
	l1         sync.Map // key -> *entry
	rdb        *redis.Client
	ttl        time.Duration
	maxEntries int
	log        *zap.Logger
	now        func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// New builds a cache. rdb may be nil to run memory-only.
func New(rdb *redis.Client, ttl time.Duration, maxEntries int, log *zap.Logger) *Tiered {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tiered{rdb: rdb, ttl: ttl, maxEntries: maxEntries, log: log, now: time.Now}
}

// Connect parses redisURL and pings it. An empty URL or an unreachable server
// yields a nil client and L2 stays disabled.
func Connect(ctx context.Context, redisURL string, log *zap.Logger) *redis.Client {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("cache: invalid redis URL, L2 disabled", zap.Error(err))
		return nil
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("cache: redis unreachable, L2 disabled", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	log.Info("cache: L2 redis connected", zap.String("addr", opts.Addr))
	return rdb
}

// Key builds a deterministic cache key from parts.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("cl:%x", sum[:12])
}

// Get tries L1 then L2. An L2 hit repopulates L1.
func (c *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.l1.Load(key); ok {
		e := v.(*entry)
		if c.now().Before(e.expiresAt) {
			c.hits.Add(1)
			return e.data, true
		}
		c.l1.Delete(key)
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			c.hits.Add(1)
			c.l1.Store(key, &entry{data: data, expiresAt: c.now().Add(c.ttl)})
			return data, true
		}
		if !errors.Is(err, redis.Nil) {
			c.log.Debug("cache: L2 get failed", zap.Error(err))
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Set stores data in both tiers.
func (c *Tiered) Set(ctx context.Context, key string, data []byte) {
	c.evictIfNeeded()
	c.l1.Store(key, &entry{data: data, expiresAt: c.now().Add(c.ttl)})

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Debug("cache: L2 set failed", zap.Error(err))
		}
	}
}

// Stats returns hit and miss counters.
func (c *Tiered) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Run removes expired L1 entries every interval until ctx is done.
func (c *Tiered) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := c.purgeExpired()
			hits, misses := c.Stats()
			c.log.Debug("cache sweep",
				zap.Int("removed", removed),
				zap.Int64("hits", hits),
				zap.Int64("misses", misses),
			)
		}
	}
}

func (c *Tiered) purgeExpired() int {
	now := c.now()
	removed := 0
	c.l1.Range(func(k, v any) bool {
		if now.After(v.(*entry).expiresAt) {
			c.l1.Delete(k)
			removed++
		}
		return true
	})
	return removed
}

// evictIfNeeded drops expired entries, then the oldest ones, until there is
// room for one more.
func (c *Tiered) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}
	count := c.size()
	if count < c.maxEntries {
		return
	}
	count -= c.purgeExpired()

	for count >= c.maxEntries {
		var oldestKey any
		oldestAt := c.now().Add(c.ttl + time.Hour)
		c.l1.Range(func(k, v any) bool {
			if e := v.(*entry); e.expiresAt.Before(oldestAt) {
				oldestKey, oldestAt = k, e.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			return
		}
		c.l1.Delete(oldestKey)
		count--
	}
}

func (c *Tiered) size() int {
	n := 0
	c.l1.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Hashed stores long keys, such as request URLs, under their Key digest.
type Hashed struct {
	*Tiered
}

func (h Hashed) Get(ctx context.Context, key string) ([]byte, bool) {
	return h.Tiered.Get(ctx, Key(key))
}

func (h Hashed) Set(ctx context.Context, key string, data []byte) {
	h.Tiered.Set(ctx, Key(key), data)
}
