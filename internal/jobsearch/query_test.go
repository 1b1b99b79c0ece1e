package jobsearch_test

import (
	"math"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/jobsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: "1", Title: "Frontend Dev", Company: "Acme", Location: "Remote", Type: "full-time",
			SalaryRange: domain.SalaryRange{70000, 90000}, Tags: []string{"React"}, Experience: "Mid Level", Posted: "2 days ago"},
		{ID: "2", Title: "Backend Dev", Company: "Globex", Location: "New York, NY", Type: "contract",
			SalaryRange: domain.SalaryRange{110000, 140000}, Tags: []string{"Go", "Postgres"}, Experience: "Senior Level", Posted: "1 week ago"},
		{ID: "3", Title: "Data Engineer", Company: "Initech", Location: "Austin, TX", Type: "Full-Time",
			SalaryRange: domain.SalaryRange{130000, 160000}, Tags: []string{"Spark"}, Experience: "Senior Level", Posted: "Just now"},
		{ID: "4", Title: "Intern", Company: "Acme", Location: "remote", Type: "internship",
			SalaryRange: domain.SalaryRange{20000, 30000}, Tags: nil, Experience: "Entry Level", Posted: "3 days ago"},
	}
}

func ids(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestQueryFilterComposition(t *testing.T) {
	jobs := []domain.Job{
		{ID: "a", Title: "Frontend Dev", Type: "full-time", SalaryRange: domain.SalaryRange{70000, 90000}},
		{ID: "b", Title: "Backend Dev", Type: "contract", SalaryRange: domain.SalaryRange{110000, 140000}},
	}

	got := jobsearch.Query(jobs, jobsearch.Params{SearchTerm: "dev", JobType: "full-time"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestQueryFilters(t *testing.T) {
	tests := []struct {
		name   string
		params jobsearch.Params
		want   []string
	}{
		{"no filters keeps order", jobsearch.Params{}, []string{"1", "2", "3", "4"}},
		{"search matches company", jobsearch.Params{SearchTerm: "ACME"}, []string{"1", "4"}},
		{"search matches tag", jobsearch.Params{SearchTerm: "postg"}, []string{"2"}},
		{"location substring ignores case", jobsearch.Params{Location: "REMOTE"}, []string{"1", "4"}},
		{"job type exact ignores case", jobsearch.Params{JobType: "FULL-TIME"}, []string{"1", "3"}},
		{"job type all bypasses", jobsearch.Params{JobType: "all"}, []string{"1", "2", "3", "4"}},
		{"job type is not substring", jobsearch.Params{JobType: "full"}, []string{}},
		{"experience membership", jobsearch.Params{Experience: []string{"Senior Level", "Entry Level"}}, []string{"2", "3", "4"}},
		{"salary range1", jobsearch.Params{SalaryRange: []string{"range1"}}, []string{"4"}},
		{"salary any bucket", jobsearch.Params{SalaryRange: []string{"range2", "range3"}}, []string{"1", "2"}},
		{"unknown bucket matches nothing", jobsearch.Params{SalaryRange: []string{"range9"}}, []string{}},
		{"filters AND together", jobsearch.Params{SearchTerm: "dev", Location: "new york", SalaryRange: []string{"range3"}}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(jobsearch.Query(sampleJobs(), tt.params)))
		})
	}
}

func TestQuerySalaryBucketContainment(t *testing.T) {
	jobs := []domain.Job{{ID: "x", SalaryRange: domain.SalaryRange{120000, 140000}}}

	assert.Len(t, jobsearch.Query(jobs, jobsearch.Params{SalaryRange: []string{"range3"}}), 1)
	assert.Empty(t, jobsearch.Query(jobs, jobsearch.Params{SalaryRange: []string{"range4"}}))

	// A range straddling a boundary sits in neither bucket.
	straddle := []domain.Job{{ID: "y", SalaryRange: domain.SalaryRange{130000, 160000}}}
	assert.Empty(t, jobsearch.Query(straddle, jobsearch.Params{SalaryRange: []string{"range3", "range4"}}))
}

func TestQuerySort(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []string
	}{
		{jobsearch.SortRelevance, []string{"1", "2", "3", "4"}},
		{"", []string{"1", "2", "3", "4"}},
		{jobsearch.SortRecent, []string{"3", "1", "4", "2"}},
		{jobsearch.SortSalaryHigh, []string{"3", "2", "1", "4"}},
		{jobsearch.SortSalaryLow, []string{"4", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(jobsearch.Query(sampleJobs(), jobsearch.Params{SortBy: tt.sortBy})))
		})
	}
}

func TestQuerySortIsStable(t *testing.T) {
	jobs := []domain.Job{
		{ID: "w1", Posted: "1 week ago", SalaryRange: domain.SalaryRange{1, 5}},
		{ID: "d1", Posted: "2 days ago", SalaryRange: domain.SalaryRange{1, 5}},
		{ID: "w2", Posted: "3 weeks ago", SalaryRange: domain.SalaryRange{1, 5}},
		{ID: "d2", Posted: "1 day ago", SalaryRange: domain.SalaryRange{1, 5}},
	}

	assert.Equal(t, []string{"d1", "d2", "w1", "w2"}, ids(jobsearch.Query(jobs, jobsearch.Params{SortBy: jobsearch.SortRecent})))
	assert.Equal(t, []string{"w1", "d1", "w2", "d2"}, ids(jobsearch.Query(jobs, jobsearch.Params{SortBy: jobsearch.SortSalaryHigh})))
}

func TestQueryRecentTiers(t *testing.T) {
	jobs := []domain.Job{
		{ID: "y", Posted: "1 year ago"},
		{ID: "m", Posted: "2 months ago"},
		{ID: "w", Posted: "1 week ago"},
		{ID: "d", Posted: "5 days ago"},
		{ID: "n", Posted: "Just now"},
	}
	// months and years share the last tier and keep their input order
	assert.Equal(t, []string{"n", "d", "w", "y", "m"}, ids(jobsearch.Query(jobs, jobsearch.Params{SortBy: jobsearch.SortRecent})))
}

func TestQuerySearchSkipsDescription(t *testing.T) {
	jobs := []domain.Job{{ID: "a", Title: "Backend Dev", Description: "Kubernetes operators"}}
	assert.Empty(t, jobsearch.Query(jobs, jobsearch.Params{SearchTerm: "kubernetes"}))
}

func TestQueryIsPure(t *testing.T) {
	jobs := sampleJobs()
	before := sampleJobs()
	params := jobsearch.Params{SearchTerm: "e", SortBy: jobsearch.SortSalaryHigh}

	first := jobsearch.Query(jobs, params)
	second := jobsearch.Query(jobs, params)

	assert.Equal(t, before, jobs)
	assert.Equal(t, first, second)

	require.NotEmpty(t, first)
	first[0].Title = "changed"
	assert.Equal(t, before, jobs)
}

func TestPostedLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", jobsearch.PostedLabel(now.Add(-3*time.Hour), now))
	assert.Equal(t, "1 day ago", jobsearch.PostedLabel(now.Add(-30*time.Hour), now))
	assert.Equal(t, "3 days ago", jobsearch.PostedLabel(now.Add(-72*time.Hour), now))
	assert.Equal(t, "1 week ago", jobsearch.PostedLabel(now.Add(-8*24*time.Hour), now))
	assert.Equal(t, "2 weeks ago", jobsearch.PostedLabel(now.Add(-15*24*time.Hour), now))

	jobs := []domain.Job{{CreatedAt: now}, {CreatedAt: now.Add(-72 * time.Hour)}}
	jobsearch.StampPosted(jobs, now)
	assert.Equal(t, "Just now", jobs[0].Posted)
	assert.Equal(t, "3 days ago", jobs[1].Posted)
}

func TestPaginate(t *testing.T) {
	jobs := sampleJobs()

	p := jobsearch.Paginate(jobs, 1, 3)
	assert.Equal(t, []string{"1", "2", "3"}, ids(p.Jobs))
	assert.Equal(t, 4, p.Total)

	p = jobsearch.Paginate(jobs, 2, 3)
	assert.Equal(t, []string{"4"}, ids(p.Jobs))

	p = jobsearch.Paginate(jobs, 5, 3)
	assert.Empty(t, p.Jobs)
	assert.Equal(t, 4, p.Total)

	p = jobsearch.Paginate(jobs, 0, 0)
	assert.Equal(t, jobsearch.DefaultPage, p.Page)
	assert.Equal(t, jobsearch.DefaultPageSize, p.PageSize)

	p = jobsearch.Paginate(jobs, 1, 1000)
	assert.Equal(t, jobsearch.MaxPageSize, p.PageSize)

	for _, page := range []int{math.MaxInt, math.MaxInt / 3, math.MaxInt/jobsearch.MaxPageSize + 2} {
		assert.NotPanics(t, func() {
			p = jobsearch.Paginate(jobs, page, jobsearch.MaxPageSize)
		})
		assert.Empty(t, p.Jobs)
		assert.Equal(t, 4, p.Total)
	}
}
