package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	cache           ListCache
	validate        *validator.Validate
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase. cache may be nil.
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	cache ListCache,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		cache:           cache,
		validate:        validate,
		now:             time.Now,
	}
}

// Submit records a candidate's application to an active job.
//
// Duplicates are rejected twice: by an existence check and by the
// applications_job_user_key constraint, which closes the race between two
// concurrent submissions. The applicants counter is bumped afterwards on a
// best-effort basis; a failure there is logged and does not undo the
// application. RecountApplicants repairs any drift.
func (uc *applicationUsecase) Submit(ctx context.Context, jobID, userID string, payload domain.ApplicationPayload) (*domain.Application, error) {
	jobID = strings.TrimSpace(jobID)
	userID = strings.TrimSpace(userID)
	payload.Email = strings.TrimSpace(payload.Email)
	if jobID == "" || userID == "" || payload.Email == "" {
		return nil, apperror.Validation("jobId, userId and email are required")
	}
	if err := uc.validate.Struct(payload); err != nil {
		return nil, apperror.Validation(validation.Message(err))
	}
	if err := requireOwner(ctx, userID, "You can only apply as yourself"); err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job is not accepting applications")
	}

	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict(domain.ErrAlreadyApplied)
	}

	now := uc.now()
	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		UserID:      userID,
		JobTitle:    job.Title,
		Company:     job.Company,
		FullName:    strings.TrimSpace(payload.FullName),
		Email:       payload.Email,
		Phone:       strings.TrimSpace(payload.Phone),
		ResumeURL:   strings.TrimSpace(payload.ResumeURL),
		CoverLetter: payload.CoverLetter,
		Status:      domain.ApplicationStatusPending,
		AppliedDate: now,
		UpdatedAt:   now,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.IncrementApplicants(ctx, jobID); err != nil {
		logger.Log.Warn().
			Err(err).
			Str("event", "applicant_counter_inconsistent").
			Str("job_id", jobID).
			Str("application_id", app.ID).
			Msg("application stored but applicants counter not incremented")
	}
	invalidateJobs(uc.cache)

	return app, nil
}

// SetStatus moves an application to any of the five statuses. Backward moves
// are allowed so recruiters can correct mistakes.
func (uc *applicationUsecase) SetStatus(ctx context.Context, applicationID, status string, feedback *string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.Validation("Invalid status. Must be one of: " + strings.Join(domain.ApplicationStatuses, ", "))
	}

	if _, _, ok := actor(ctx); ok {
		job, err := uc.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if err := requireOwner(ctx, job.PostedBy, "You can only update applications for your own jobs"); err != nil {
			return nil, err
		}
	}

	if feedback != nil {
		trimmed := strings.TrimSpace(*feedback)
		feedback = &trimmed
	}
	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status, feedback)
}

// Withdraw deletes the candidate's own application and decrements the job's
// counter in the same transaction.
func (uc *applicationUsecase) Withdraw(ctx context.Context, applicationID, userID string) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.UserID != userID {
		return apperror.Forbidden("You can only withdraw your own applications")
	}
	if err := uc.applicationRepo.Delete(ctx, applicationID); err != nil {
		return err
	}
	invalidateJobs(uc.cache)
	return nil
}

// GetApplication returns an application to its candidate or to the recruiter
// who owns the job. Calls without a user on ctx are not restricted.
func (uc *applicationUsecase) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userID, role, ok := actor(ctx)
	if !ok || app.UserID == userID {
		return app, nil
	}
	if role == domain.RoleRecruiter {
		if err := uc.requireJobOwner(ctx, app.JobID); err != nil {
			return nil, err
		}
		return app, nil
	}
	return nil, apperror.Forbidden("You can only view your own applications")
}

// ListApplications filters by candidate or job. Candidates may only list their
// own applications; recruiters may only list applicants of their own jobs.
func (uc *applicationUsecase) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	if filter.UserID == "" && filter.JobID == "" {
		return nil, apperror.Validation("userId or jobId is required")
	}

	if userID, role, ok := actor(ctx); ok {
		switch {
		case role == domain.RoleRecruiter && filter.JobID != "":
			if err := uc.requireJobOwner(ctx, filter.JobID); err != nil {
				return nil, err
			}
		case filter.UserID != userID:
			return nil, apperror.Forbidden("You can only list your own applications")
		}
	}
	return uc.applicationRepo.List(ctx, filter)
}

func (uc *applicationUsecase) requireJobOwner(ctx context.Context, jobID string) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	return requireOwner(ctx, job.PostedBy, "You can only view applications for your own jobs")
}
