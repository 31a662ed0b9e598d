package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiered_SetGet(t *testing.T) {
	ctx := context.Background()
	c := New(nil, time.Minute, 0, nil)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestTiered_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := New(nil, time.Minute, 0, nil)
	c.now = func() time.Time { return now }

	c.Set(ctx, "k", []byte("v"))
	now = now.Add(2 * time.Minute)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.size())
}

func TestTiered_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := New(nil, time.Hour, 2, nil)
	c.now = func() time.Time { return now }

	c.Set(ctx, "a", []byte("1"))
	now = now.Add(time.Second)
	c.Set(ctx, "b", []byte("2"))
	now = now.Add(time.Second)
	c.Set(ctx, "c", []byte("3"))

	assert.Equal(t, 2, c.size())
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
}

func TestTiered_RunStopsWithContext(t *testing.T) {
	c := New(nil, time.Minute, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("a", "b"), Key("a|b", ""))
	assert.Len(t, Key("x"), len("cl:")+24)
}

func TestConnect_EmptyURL(t *testing.T) {
	assert.Nil(t, Connect(context.Background(), "", nil))
}

func TestHashed(t *testing.T) {
	ctx := context.Background()
	c := New(nil, time.Minute, 0, nil)
	h := Hashed{Tiered: c}
	url := "https://jsearch.p.rapidapi.com/search?num_pages=1&page=1&query=go"

	h.Set(ctx, url, []byte(`{"data":[]}`))
	got, ok := h.Get(ctx, url)
	require.True(t, ok)
	assert.Equal(t, `{"data":[]}`, string(got))

	_, ok = c.Get(ctx, url)
	assert.False(t, ok)
	_, ok = c.Get(ctx, Key(url))
	assert.True(t, ok)
}
