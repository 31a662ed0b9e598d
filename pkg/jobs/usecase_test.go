package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharunkumar-sh/career-lens/pkg/jobs/jsearch"
)

type fakeUpstream struct {
	resp   jsearch.Response
	err    error
	params []jsearch.Params
}

func (f *fakeUpstream) Search(_ context.Context, p jsearch.Params) (jsearch.Response, error) {
	f.params = append(f.params, p)
	return f.resp, f.err
}

func newTestService(up Upstream) *service {
	s := NewService(up, nil).(*service)
	s.now = func() time.Time { return time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSearch_Live(t *testing.T) {
	logo := "https://cdn.example/logo.png"
	up := &fakeUpstream{resp: jsearch.Response{
		NumPages: 3,
		Data: []jsearch.Job{
			{
				JobID:                  "abc",
				JobTitle:               "Go Developer",
				EmployerName:           "Acme",
				EmployerLogo:           &logo,
				JobCity:                "Austin",
				JobState:               "TX",
				JobEmploymentType:      "CONTRACTOR",
				JobMinSalary:           f(90000),
				JobMaxSalary:           f(120000),
				JobSalaryCurrency:      "USD",
				JobPostedAtDatetimeUTC: "2025-03-30T08:00:00Z",
				JobDescription:         "We use Go, Docker and AWS",
				JobHighlights:          &jsearch.Highlights{Qualifications: []string{"3+ years"}},
			},
			{},
		},
	}}
	svc := newTestService(up)

	res, err := svc.Search(context.Background(), Query{Query: "golang", Location: "Austin", Remote: true, Page: 2, EmploymentType: "CONTRACTOR"})
	require.NoError(t, err)
	require.Len(t, up.params, 1)
	assert.Equal(t, jsearch.Params{Query: "golang in Austin remote", Page: 2, NumPages: 1, EmploymentTypes: "CONTRACTOR"}, up.params[0])

	assert.False(t, res.IsDemo)
	assert.Empty(t, res.Message)
	assert.Equal(t, 30, res.TotalJobs)
	require.Len(t, res.Jobs, 2)

	j := res.Jobs[0]
	assert.Equal(t, "abc", j.ID)
	assert.Equal(t, "Austin, TX", j.Location)
	assert.Equal(t, "Contract", j.Type)
	assert.Equal(t, "$90k - $120k", j.Salary)
	assert.Equal(t, "Yesterday", j.Posted)
	assert.Equal(t, &logo, j.CompanyLogo)
	assert.Equal(t, []string{"3+ years"}, j.Highlights)
	assert.Equal(t, []string{}, j.Responsibilities)
	assert.Subset(t, j.Skills, []string{"Go", "Docker", "Aws"})
	assert.Zero(t, j.MatchScore)

	empty := res.Jobs[1]
	assert.Equal(t, "job-1", empty.ID)
	assert.Equal(t, "Software Developer", empty.Title)
	assert.Equal(t, "Company", empty.Company)
	assert.Equal(t, "Remote", empty.Location)
	assert.Equal(t, "Full-time", empty.Type)
	assert.Equal(t, "Salary not disclosed", empty.Salary)
	assert.Equal(t, "Recently", empty.Posted)
	assert.Nil(t, empty.CompanyLogo)
	assert.Equal(t, []string{}, empty.Skills)
}

func TestSearch_DefaultQueryAndTotals(t *testing.T) {
	up := &fakeUpstream{resp: jsearch.Response{Data: []jsearch.Job{{JobID: "1"}}}}
	res, err := newTestService(up).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, defaultQuery, up.params[0].Query)
	assert.Equal(t, 1, res.TotalJobs)
}

func TestSearch_DemoFallback(t *testing.T) {
	res, err := newTestService(nil).Search(context.Background(), Query{Query: "go"})
	require.NoError(t, err)
	assert.True(t, res.IsDemo)
	assert.Equal(t, msgNoAPIKey, res.Message)
	assert.Equal(t, 10, res.TotalJobs)
	assert.Len(t, res.Jobs, 8)

	up := &fakeUpstream{err: &jsearch.StatusError{Code: 429}}
	res, err = newTestService(up).Search(context.Background(), Query{Query: "go"})
	require.NoError(t, err)
	assert.True(t, res.IsDemo)
	assert.Equal(t, msgUnavailable, res.Message)

	up = &fakeUpstream{err: jsearch.ErrNoAPIKey}
	res, err = newTestService(up).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, msgNoAPIKey, res.Message)
}

func TestSuggest_QueryChoice(t *testing.T) {
	up := &fakeUpstream{}
	svc := newTestService(up)
	ctx := context.Background()

	_, _ = svc.Suggest(ctx, SuggestRequest{JobTitle: "Data Engineer", Skills: []string{"Python"}})
	_, _ = svc.Suggest(ctx, SuggestRequest{Skills: []string{"Go", "Docker", "AWS", "Redis"}})
	_, _ = svc.Suggest(ctx, SuggestRequest{})

	require.Len(t, up.params, 3)
	assert.Equal(t, "Data Engineer", up.params[0].Query)
	assert.Equal(t, "Go Docker AWS", up.params[1].Query)
	assert.Equal(t, defaultQuery, up.params[2].Query)
	assert.Equal(t, 2, up.params[0].NumPages)
}

func TestSuggest_ScoresAndSorts(t *testing.T) {
	up := &fakeUpstream{resp: jsearch.Response{Data: []jsearch.Job{
		{JobID: "weak", JobDescription: "Java and Spring"},
		{JobID: "strong", JobDescription: "Python, Docker, PostgreSQL"},
		{JobID: "none"},
	}}}
	res, err := newTestService(up).Suggest(context.Background(), SuggestRequest{Skills: []string{"Python", "Docker", "PostgreSQL"}})
	require.NoError(t, err)
	require.Len(t, res.Jobs, 3)
	assert.Equal(t, "strong", res.Jobs[0].ID)
	assert.Equal(t, 88, res.Jobs[0].MatchScore)
	for i := 1; i < len(res.Jobs); i++ {
		assert.GreaterOrEqual(t, res.Jobs[i-1].MatchScore, res.Jobs[i].MatchScore)
	}
}

func TestSuggest_DemoScoresAreDeterministic(t *testing.T) {
	req := SuggestRequest{Skills: []string{"React", "TypeScript", "CSS"}}

	a, err := newTestService(nil).Suggest(context.Background(), req)
	require.NoError(t, err)
	b, err := newTestService(&fakeUpstream{err: errors.New("boom")}).Suggest(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, a.IsDemo)
	assert.Equal(t, 8, a.TotalJobs)
	assert.Equal(t, msgNoAPIKey, a.Message)
	assert.Equal(t, 10, b.TotalJobs)
	assert.Equal(t, msgUnavailable, b.Message)
	assert.Equal(t, a.Jobs, b.Jobs)
	assert.Equal(t, "mock-1", a.Jobs[0].ID)
}
