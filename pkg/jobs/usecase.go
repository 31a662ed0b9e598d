package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dharunkumar-sh/career-lens/pkg/jobs/jsearch"
	"github.com/dharunkumar-sh/career-lens/pkg/nlp"
)

// Upstream is the job search provider port; jsearch.Client implements it.
type Upstream interface {
	Search(ctx context.Context, p jsearch.Params) (jsearch.Response, error)
}

type UseCase interface {
	Search(ctx context.Context, q Query) (SearchResult, error)
	Suggest(ctx context.Context, req SuggestRequest) (SearchResult, error)
}

type service struct {
	upstream Upstream
	log      *zap.Logger
	now      func() time.Time
}

// NewService builds the job search use case. A nil upstream serves demo data.
func NewService(upstream Upstream, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{upstream: upstream, log: log, now: time.Now}
}

func (s *service) Search(ctx context.Context, q Query) (SearchResult, error) {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		query = defaultQuery
	}
	searchQuery := query
	if loc := strings.TrimSpace(q.Location); loc != "" {
		searchQuery += " in " + loc
	}
	if q.Remote {
		searchQuery += " remote"
	}

	resp, err := s.fetch(ctx, jsearch.Params{
		Query:           searchQuery,
		Page:            q.Page,
		NumPages:        1,
		EmploymentTypes: q.EmploymentType,
	})
	if err != nil {
		return demoResult(DemoJobs(), 10, s.fallbackMessage(err)), nil
	}

	now := s.now()
	out := make([]Job, 0, len(resp.Data))
	for i, raw := range resp.Data {
		out = append(out, toJob(i, raw, now))
	}
	return SearchResult{Jobs: out, TotalJobs: totalJobs(resp, len(out))}, nil
}

func (s *service) Suggest(ctx context.Context, req SuggestRequest) (SearchResult, error) {
	query := strings.TrimSpace(req.JobTitle)
	if query == "" {
		query = strings.Join(firstN(req.Skills, 3), " ")
	}
	if strings.TrimSpace(query) == "" {
		query = defaultQuery
	}

	resp, err := s.fetch(ctx, jsearch.Params{Query: query, Page: 1, NumPages: 2})
	if err != nil {
		demo := DemoJobs()
		for i := range demo {
			demo[i].MatchScore = nlp.MatchScore(demo[i].Skills, req.Skills)
		}
		sortByMatch(demo)
		total := len(demo)
		if !errors.Is(err, jsearch.ErrNoAPIKey) {
			total = 10
		}
		return demoResult(demo, total, s.fallbackMessage(err)), nil
	}

	now := s.now()
	out := make([]Job, 0, len(resp.Data))
	for i, raw := range resp.Data {
		j := toJob(i, raw, now)
		j.MatchScore = nlp.MatchScore(j.Skills, req.Skills)
		out = append(out, j)
	}
	sortByMatch(out)
	return SearchResult{Jobs: out, TotalJobs: totalJobs(resp, len(out))}, nil
}

func (s *service) fetch(ctx context.Context, p jsearch.Params) (jsearch.Response, error) {
	if s.upstream == nil {
		return jsearch.Response{}, jsearch.ErrNoAPIKey
	}
	resp, err := s.upstream.Search(ctx, p)
	if err != nil {
		if !errors.Is(err, jsearch.ErrNoAPIKey) {
			s.log.Warn("job search upstream failed", zap.String("query", p.Query), zap.Error(err))
		}
		return jsearch.Response{}, fmt.Errorf("job search: %w", err)
	}
	return resp, nil
}

func (s *service) fallbackMessage(err error) string {
	if errors.Is(err, jsearch.ErrNoAPIKey) {
		return msgNoAPIKey
	}
	return msgUnavailable
}

func demoResult(jobs []Job, total int, msg string) SearchResult {
	return SearchResult{Jobs: jobs, TotalJobs: total, IsDemo: true, Message: msg}
}

func toJob(i int, raw jsearch.Job, now time.Time) Job {
	j := Job{
		ID:               raw.JobID,
		Title:            raw.JobTitle,
		Company:          raw.EmployerName,
		Location:         formatLocation(raw.JobCity, raw.JobState, raw.JobCountry),
		IsRemote:         raw.JobIsRemote,
		Type:             FormatEmploymentType(raw.JobEmploymentType),
		Salary:           FormatSalary(raw.JobMinSalary, raw.JobMaxSalary, raw.JobSalaryCurrency),
		Posted:           FormatPosted(raw.JobPostedAtDatetimeUTC, now),
		Description:      raw.JobDescription,
		Highlights:       []string{},
		Responsibilities: []string{},
		ApplyLink:        raw.JobApplyLink,
		Skills:           nlp.ExtractSkills(raw.JobDescription),
		Publisher:        raw.JobPublisher,
	}
	if j.ID == "" {
		j.ID = fmt.Sprintf("job-%d", i)
	}
	if j.Title == "" {
		j.Title = "Software Developer"
	}
	if j.Company == "" {
		j.Company = "Company"
	}
	if raw.EmployerLogo != nil && *raw.EmployerLogo != "" {
		j.CompanyLogo = raw.EmployerLogo
	}
	if h := raw.JobHighlights; h != nil {
		if h.Qualifications != nil {
			j.Highlights = h.Qualifications
		}
		if h.Responsibilities != nil {
			j.Responsibilities = h.Responsibilities
		}
	}
	return j
}

func totalJobs(resp jsearch.Response, n int) int {
	if resp.NumPages > 0 {
		return resp.NumPages * 10
	}
	return n
}

func sortByMatch(jobs []Job) {
	sort.SliceStable(jobs, func(a, b int) bool { return jobs[a].MatchScore > jobs[b].MatchScore })
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
