package domain

import (
	"context"
	"time"
)

// SavedJob is a candidate's bookmark of a job. A job is saved at most once
// per user.
type SavedJob struct {
	UserID  string    `json:"userId"`
	JobID   string    `json:"jobId"`
	SavedAt time.Time `json:"savedAt"`
	Job     *Job      `json:"job,omitempty"`
}

type SavedJobRepository interface {
	// Save is idempotent: saving an already saved job keeps the first SavedAt.
	Save(ctx context.Context, userID, jobID string, savedAt time.Time) error
	// Delete is idempotent.
	Delete(ctx context.Context, userID, jobID string) error
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	// List returns the user's saved jobs, most recently saved first, with the
	// job attached.
	List(ctx context.Context, userID string) ([]SavedJob, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, userID, jobID string) error
	UnsaveJob(ctx context.Context, userID, jobID string) error
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)
	ListSavedJobs(ctx context.Context, userID string) ([]SavedJob, error)
}
