package jobsearch

import "go-jobboard-backend/internal/domain"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one window of a listing plus the size of the whole result.
type Page struct {
	Jobs     []domain.Job `json:"jobs"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// Paginate cuts jobs into pages. Out of range values fall back to the defaults
// and page sizes are capped at MaxPageSize. A page past the end is empty.
func Paginate(jobs []domain.Job, page, pageSize int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	res := Page{Jobs: []domain.Job{}, Total: len(jobs), Page: page, PageSize: pageSize}
	// compare before multiplying; huge page numbers would overflow
	if page-1 >= (len(jobs)+pageSize-1)/pageSize {
		return res
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	res.Jobs = jobs[start:end]
	return res
}
