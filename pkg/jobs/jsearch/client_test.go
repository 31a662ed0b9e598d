package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache map[string][]byte

func (m mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapCache) Set(_ context.Context, key string, data []byte) { m[key] = data }

const sampleBody = `{"status":"OK","num_pages":1,"data":[{"job_id":"j1","job_title":"Go Developer","employer_name":"Acme","job_city":"Austin","job_state":"TX","job_min_salary":90000,"job_description":"Go and Docker"}]}`

func TestClient_Search(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "go developer in Austin", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("num_pages"))
		assert.Equal(t, "FULLTIME", r.URL.Query().Get("employment_types"))
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, rapidAPIHost, r.Header.Get("x-rapidapi-host"))
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	cache := mapCache{}
	c := New("secret", srv.URL, cache)
	params := Params{Query: "go developer in Austin", Page: 1, NumPages: 2, EmploymentTypes: "FULLTIME"}

	resp, err := c.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Go Developer", resp.Data[0].JobTitle)
	require.NotNil(t, resp.Data[0].JobMinSalary)
	assert.Equal(t, 90000.0, *resp.Data[0].JobMinSalary)
	assert.Nil(t, resp.Data[0].JobMaxSalary)

	// second call is served from cache
	_, err = c.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, cache, c.SearchURL(params))
}

func TestClient_SearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := New("secret", srv.URL, nil).Search(context.Background(), Params{Query: "x"})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestClient_NoKey(t *testing.T) {
	_, err := New("", "", nil).Search(context.Background(), Params{Query: "x"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestClient_SearchURLDefaults(t *testing.T) {
	u := New("k", "https://example.test", nil).SearchURL(Params{Query: "dev"})
	assert.Equal(t, "https://example.test/search?num_pages=1&page=1&query=dev", u)
}
