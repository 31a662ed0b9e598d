package jsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"
	rapidAPIHost   = "jsearch.p.rapidapi.com"
)

// ErrNoAPIKey is returned when the client has no RapidAPI key configured.
var ErrNoAPIKey = errors.New("jsearch: rapidapi key is empty")

// Cache is the subset of a byte cache the client needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

// Client is a minimal JSearch (RapidAPI) search client.
type Client struct {
	APIKey  string
	BaseURL string
	cache   Cache
	httpDo  *http.Client
}

func New(apiKey, baseURL string, cache Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		cache:   cache,
		httpDo: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type Params struct {
	Query           string
	Page            int
	NumPages        int
	EmploymentTypes string
}

type Highlights struct {
	Qualifications   []string `json:"Qualifications"`
	Responsibilities []string `json:"Responsibilities"`
}

type Job struct {
	JobID                  string      `json:"job_id"`
	JobTitle               string      `json:"job_title"`
	EmployerName           string      `json:"employer_name"`
	EmployerLogo           *string     `json:"employer_logo"`
	JobPublisher           string      `json:"job_publisher"`
	JobEmploymentType      string      `json:"job_employment_type"`
	JobApplyLink           string      `json:"job_apply_link"`
	JobDescription         string      `json:"job_description"`
	JobIsRemote            bool        `json:"job_is_remote"`
	JobPostedAtDatetimeUTC string      `json:"job_posted_at_datetime_utc"`
	JobCity                string      `json:"job_city"`
	JobState               string      `json:"job_state"`
	JobCountry             string      `json:"job_country"`
	JobMinSalary           *float64    `json:"job_min_salary"`
	JobMaxSalary           *float64    `json:"job_max_salary"`
	JobSalaryCurrency      string      `json:"job_salary_currency"`
	JobHighlights          *Highlights `json:"job_highlights"`
}

type Response struct {
	Status   string `json:"status"`
	NumPages int    `json:"num_pages"`
	Data     []Job  `json:"data"`
}

// StatusError carries a non-2xx upstream status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jsearch http %d", e.Code)
}

// SearchURL builds the request URL; it doubles as the cache key.
func (c *Client) SearchURL(p Params) string {
	q := url.Values{}
	q.Set("query", p.Query)
	page := p.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	numPages := p.NumPages
	if numPages < 1 {
		numPages = 1
	}
	q.Set("num_pages", strconv.Itoa(numPages))
	if p.EmploymentTypes != "" {
		q.Set("employment_types", p.EmploymentTypes)
	}
	return c.BaseURL + "/search?" + q.Encode()
}

// Search queries JSearch. Successful bodies are cached by URL.
func (c *Client) Search(ctx context.Context, p Params) (Response, error) {
	if c.APIKey == "" {
		return Response{}, ErrNoAPIKey
	}
	endpoint := c.SearchURL(p)

	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, endpoint); ok {
			var out Response
			if err := json.Unmarshal(body, &out); err == nil {
				return out, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &StatusError{Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read jsearch body: %w", err)
	}
	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return Response{}, fmt.Errorf("decode jsearch body: %w", err)
	}
	if c.cache != nil {
		c.cache.Set(ctx, endpoint, body)
	}
	return out, nil
}
