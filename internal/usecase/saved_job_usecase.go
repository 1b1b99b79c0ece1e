package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/jobsearch"
	"go-jobboard-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedRepo domain.SavedJobRepository
	jobRepo   domain.JobRepository
	now       func() time.Time
}

func NewSavedJobUsecase(savedRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{savedRepo: savedRepo, jobRepo: jobRepo, now: time.Now}
}

func checkSavedJobArgs(ctx context.Context, userID, jobID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" {
		return apperror.Validation("userId and jobId are required")
	}
	return requireOwner(ctx, userID, "You can only manage your own saved jobs")
}

// SaveJob bookmarks an existing job. Saving twice is not an error.
func (u *savedJobUsecase) SaveJob(ctx context.Context, userID, jobID string) error {
	if err := checkSavedJobArgs(ctx, userID, jobID); err != nil {
		return err
	}
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return err
	}
	return u.savedRepo.Save(ctx, userID, jobID, u.now())
}

func (u *savedJobUsecase) UnsaveJob(ctx context.Context, userID, jobID string) error {
	if err := checkSavedJobArgs(ctx, userID, jobID); err != nil {
		return err
	}
	return u.savedRepo.Delete(ctx, userID, jobID)
}

func (u *savedJobUsecase) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	if err := checkSavedJobArgs(ctx, userID, jobID); err != nil {
		return false, err
	}
	return u.savedRepo.Exists(ctx, userID, jobID)
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Validation("userId is required")
	}
	if err := requireOwner(ctx, userID, "You can only view your own saved jobs"); err != nil {
		return nil, err
	}
	saved, err := u.savedRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range saved {
		if saved[i].Job != nil {
			saved[i].Job.Posted = jobsearch.PostedLabel(saved[i].Job.CreatedAt, now)
		}
	}
	return saved, nil
}
