// Package jobsearch filters and orders an in-memory job collection for the
// public listing. Nothing here touches storage; every function is pure.
package jobsearch

import (
	"sort"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/dustin/go-humanize"
)

// Sort orders
const (
	SortRelevance  = "relevance"
	SortRecent     = "recent"
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
)

// JobTypeAll disables the job type filter.
const JobTypeAll = "all"

// LabelJustNow is used for jobs posted less than a day ago.
const LabelJustNow = "Just now"

// Params holds the listing filters. Zero values do not filter.
type Params struct {
	SearchTerm  string
	Location    string
	JobType     string
	Experience  []string
	SalaryRange []string
	SortBy      string
}

type bucket struct {
	min, max float64
	open     bool
}

// Buckets are matched by containment: the whole job range must lie inside.
var salaryBuckets = map[string]bucket{
	"range1": {min: 0, max: 50000},
	"range2": {min: 50000, max: 100000},
	"range3": {min: 100000, max: 150000},
	"range4": {min: 150000, open: true},
}

// IsValidSalaryBucket reports whether id names a known salary bucket.
func IsValidSalaryBucket(id string) bool {
	_, ok := salaryBuckets[id]
	return ok
}

// Query returns the jobs matching p in the order p.SortBy asks for.
// The input slice is never modified.
func Query(jobs []domain.Job, p Params) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if matches(&j, &p) {
			out = append(out, j)
		}
	}

	switch p.SortBy {
	case SortRecent:
		sort.SliceStable(out, func(a, b int) bool {
			return recencyRank(out[a].Posted) < recencyRank(out[b].Posted)
		})
	case SortSalaryHigh:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].SalaryRange.Max() > out[b].SalaryRange.Max()
		})
	case SortSalaryLow:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].SalaryRange.Min() < out[b].SalaryRange.Min()
		})
	}
	return out
}

func matches(j *domain.Job, p *Params) bool {
	if p.SearchTerm != "" {
		term := strings.ToLower(p.SearchTerm)
		if !strings.Contains(strings.ToLower(j.Title), term) &&
			!strings.Contains(strings.ToLower(j.Company), term) &&
			!anyTagContains(j.Tags, term) {
			return false
		}
	}

	if p.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(p.Location)) {
		return false
	}

	if p.JobType != "" && !strings.EqualFold(p.JobType, JobTypeAll) &&
		strings.ToLower(j.Type) != strings.ToLower(p.JobType) {
		return false
	}

	if len(p.Experience) > 0 && !containsString(p.Experience, j.Experience) {
		return false
	}

	if len(p.SalaryRange) > 0 {
		ok := false
		for _, id := range p.SalaryRange {
			if inBucket(j.SalaryRange, id) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func inBucket(r domain.SalaryRange, id string) bool {
	b, ok := salaryBuckets[id]
	if !ok {
		return false
	}
	if b.open {
		return r.Min() >= b.min
	}
	return r.Min() >= b.min && r.Max() <= b.max
}

func anyTagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// recencyRank orders posted labels: "Just now", then day-based, then week-based,
// then anything older.
func recencyRank(label string) int {
	switch {
	case strings.Contains(label, LabelJustNow):
		return 0
	case strings.Contains(label, "day"):
		return 1
	case strings.Contains(label, "week"):
		return 2
	default:
		return 3
	}
}

// PostedLabel renders how long ago a job was created relative to now.
func PostedLabel(createdAt, now time.Time) string {
	if now.Sub(createdAt) < 24*time.Hour {
		return LabelJustNow
	}
	return humanize.RelTime(createdAt, now, "ago", "from now")
}

// StampPosted fills Posted on every job in place.
func StampPosted(jobs []domain.Job, now time.Time) {
	for i := range jobs {
		jobs[i].Posted = PostedLabel(jobs[i].CreatedAt, now)
	}
}
