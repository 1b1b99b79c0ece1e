package usecase

import (
	"encoding/json"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"
)

// ListCache holds serialized job listings. *cache.Cache implements it.
// A listing read from storage is written back only if the cache generation
// has not moved since the read began.
type ListCache interface {
	Get(key string) ([]byte, bool)
	Generation() uint64
	SetIfGeneration(key string, val []byte, gen uint64) (bool, error)
	Reset() error
}

func jobListKey(f domain.JobFilter) string {
	return "jobs|" + f.Status + "|" + f.PostedBy
}

func cachedJobs(c ListCache, f domain.JobFilter) ([]domain.Job, bool) {
	if c == nil {
		return nil, false
	}
	raw, ok := c.Get(jobListKey(f))
	if !ok {
		return nil, false
	}
	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false
	}
	return jobs, true
}

func cacheGeneration(c ListCache) uint64 {
	if c == nil {
		return 0
	}
	return c.Generation()
}

// storeJobs caches jobs unless the cache was reset after gen was taken.
func storeJobs(c ListCache, f domain.JobFilter, jobs []domain.Job, gen uint64) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	stored, err := c.SetIfGeneration(jobListKey(f), raw, gen)
	if err != nil {
		logger.Log.Debug().Err(err).Msg("job list not cached")
		return
	}
	if !stored {
		logger.Log.Debug().Str("key", jobListKey(f)).Msg("job list changed during read, not cached")
	}
}

// invalidateJobs drops every cached listing. Listings are keyed by filter, so
// any write can affect several of them.
func invalidateJobs(c ListCache) {
	if c == nil {
		return
	}
	if err := c.Reset(); err != nil {
		logger.Log.Warn().Err(err).Msg("job list cache reset failed")
	}
}
